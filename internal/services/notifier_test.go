package services

import (
	"errors"
	"testing"
	"time"
)

type stubSender struct {
	failures int
	calls    int
}

func (s *stubSender) Send(to, subject, body string) error {
	s.calls++
	if s.calls <= s.failures {
		return errors.New("smtp unavailable")
	}
	return nil
}

func TestNotifyRetriesUntilSuccess(t *testing.T) {
	sender := &stubSender{failures: 2}
	notifier := &notificationService{sender: sender, maxAttempts: 3, backoff: time.Millisecond}

	if err := notifier.Notify("candidate@example.com", "subject", "body"); err != nil {
		t.Fatalf("Notify() error = %v, want nil after retries", err)
	}

	if sender.calls != 3 {
		t.Errorf("sender called %d times, want 3", sender.calls)
	}
}

func TestNotifyExhaustsAttempts(t *testing.T) {
	sender := &stubSender{failures: 5}
	notifier := &notificationService{sender: sender, maxAttempts: 3, backoff: time.Millisecond}

	err := notifier.Notify("candidate@example.com", "subject", "body")
	if !errors.Is(err, ErrNotification) {
		t.Fatalf("Notify() error = %v, want ErrNotification", err)
	}

	if sender.calls != 3 {
		t.Errorf("sender called %d times, want exactly 3", sender.calls)
	}
}

func TestNotifyFirstAttemptSucceeds(t *testing.T) {
	sender := &stubSender{}
	notifier := &notificationService{sender: sender, maxAttempts: 3, backoff: time.Millisecond}

	if err := notifier.Notify("candidate@example.com", "subject", "body"); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}

	if sender.calls != 1 {
		t.Errorf("sender called %d times, want 1", sender.calls)
	}
}
