package services

import (
	"fmt"
	"log"
	"time"

	"gopkg.in/gomail.v2"

	"smartrecruit/recruitflow/internal/config"
)

// NotificationService delivers candidate-facing emails. The retry policy
// lives here, not in the scoring core: each Notify call makes up to
// maxAttempts deliveries with a fixed backoff, and only the final failure
// surfaces, as ErrNotification. Callers treat that as a warning, never as a
// reason to roll back a committed status change.
type NotificationService interface {
	Notify(to, subject, body string) error
}

// MailSender is the raw single-attempt delivery, split out so tests can
// substitute a deterministic stub.
type MailSender interface {
	Send(to, subject, body string) error
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

func (s *smtpSender) Send(to, subject, body string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", s.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}

type notificationService struct {
	sender      MailSender
	maxAttempts int
	backoff     time.Duration
}

func NewNotificationService(smtpCfg config.SMTPConfig, notifyCfg config.NotifyConfig) NotificationService {
	dialer := gomail.NewDialer(smtpCfg.Host, smtpCfg.Port, smtpCfg.Username, smtpCfg.Password)

	return &notificationService{
		sender:      &smtpSender{dialer: dialer, from: smtpCfg.From},
		maxAttempts: notifyCfg.MaxAttempts,
		backoff:     notifyCfg.Backoff,
	}
}

// Notify implements NotificationService.
func (n *notificationService) Notify(to, subject, body string) error {
	var lastErr error

	for attempt := 1; attempt <= n.maxAttempts; attempt++ {
		if err := n.sender.Send(to, subject, body); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if attempt < n.maxAttempts {
			log.Printf("⚠️  Mail attempt %d/%d to %s failed: %v. Retrying...\n", attempt, n.maxAttempts, to, lastErr)
			time.Sleep(n.backoff)
		}
	}

	log.Printf("❌ Mail to %s failed after %d attempts: %v\n", to, n.maxAttempts, lastErr)
	return fmt.Errorf("%w: %v", ErrNotification, lastErr)
}
