package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smartrecruit/recruitflow/internal/models"
	"smartrecruit/recruitflow/internal/repositories"
	"smartrecruit/recruitflow/internal/services"
)

type InterviewHandler struct {
	interviewRepo repositories.InterviewRepository
	appRepo       repositories.ApplicationRepository
	candidateRepo repositories.CandidateRepository
	jobRepo       repositories.JobOfferRepository
	notifier      services.NotificationService
}

func NewInterviewHandler(
	interviewRepo repositories.InterviewRepository,
	appRepo repositories.ApplicationRepository,
	candidateRepo repositories.CandidateRepository,
	jobRepo repositories.JobOfferRepository,
	notifier services.NotificationService,
) *InterviewHandler {
	return &InterviewHandler{
		interviewRepo: interviewRepo,
		appRepo:       appRepo,
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		notifier:      notifier,
	}
}

// HandleList handles GET /interview/list. Every scheduled interview comes
// back with the candidate name and job title, soonest first.
func (h *InterviewHandler) HandleList(c *fiber.Ctx) error {
	interviews, err := h.interviewRepo.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list interviews",
		})
	}

	rows := make([]models.InterviewRow, 0, len(interviews))
	for _, interview := range interviews {
		rows = append(rows, models.InterviewRow{
			InterviewID:       interview.ID.String(),
			ApplicationID:     interview.ApplicationID.String(),
			CandidateName:     interview.Application.Candidate.Name,
			JobTitle:          interview.Application.Job.Title,
			InterviewDatetime: interview.InterviewDatetime,
			Location:          interview.Location,
		})
	}

	return c.JSON(rows)
}

// HandleSchedule handles POST /application/:id/interview. One interview per
// application; the candidate is notified, and a delivery failure surfaces as
// a warning without undoing the booking.
func (h *InterviewHandler) HandleSchedule(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	var req models.ScheduleInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "location is required",
		})
	}

	if req.InterviewDatetime.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "interview_datetime must be in the future",
		})
	}

	app, err := h.appRepo.FindByID(appID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Application not found",
		})
	}

	if _, err := h.interviewRepo.FindByApplicationID(appID); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "An interview is already scheduled for this application",
		})
	}

	interview := &models.Interview{
		ID:                uuid.New(),
		ApplicationID:     appID,
		InterviewDatetime: req.InterviewDatetime,
		Location:          req.Location,
		CreatedAt:         time.Now(),
	}

	if err := h.interviewRepo.Create(interview); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to schedule interview",
		})
	}

	warning := h.notifyCandidate(app, interview)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"interview": interview,
		"warning":   warning,
	})
}

func (h *InterviewHandler) notifyCandidate(app *models.Application, interview *models.Interview) string {
	candidate, err := h.candidateRepo.FindByID(app.CandidateID)
	if err != nil || len(candidate.Emails) == 0 {
		return "candidate email not available, no notification sent"
	}

	jobTitle := "the position you applied for"
	if job, err := h.jobRepo.FindByID(app.JobID); err == nil {
		jobTitle = job.Title
	}

	body := fmt.Sprintf("Hello %s,\n\nYour interview for %s is scheduled on %s at %s.\n\nBest regards,\nThe recruitment team",
		candidate.Name, jobTitle, interview.InterviewDatetime.Format("2006-01-02 15:04"), interview.Location)

	if err := h.notifier.Notify(candidate.Emails[0], "Interview invitation", body); err != nil {
		return fmt.Sprintf("interview scheduled but notification failed: %v", err)
	}

	return ""
}
