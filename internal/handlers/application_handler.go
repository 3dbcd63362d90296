package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smartrecruit/recruitflow/internal/models"
	"smartrecruit/recruitflow/internal/repositories"
	"smartrecruit/recruitflow/internal/services"
)

type ApplicationHandler struct {
	appRepo        repositories.ApplicationRepository
	appService     services.ApplicationService
	storageService services.StorageService
	maxFileSize    int64
}

func NewApplicationHandler(
	appRepo repositories.ApplicationRepository,
	appService services.ApplicationService,
	storageService services.StorageService,
	maxFileSize int64,
) *ApplicationHandler {
	return &ApplicationHandler{
		appRepo:        appRepo,
		appService:     appService,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleApply handles POST /application/apply. Multipart form: candidate_id,
// job_id, tech_score and an optional "video" file. The scoring pipeline
// runs synchronously; on success the fully scored application is returned.
func (h *ApplicationHandler) HandleApply(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.FormValue("candidate_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate_id format",
		})
	}

	jobID, err := uuid.Parse(c.FormValue("job_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job_id format",
		})
	}

	var techScore *float64
	if raw := c.FormValue("tech_score"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 || value > 100 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "tech_score must be a number between 0 and 100",
			})
		}
		techScore = &value
	}

	videoPath := ""
	if video, err := c.FormFile("video"); err == nil && video != nil {
		if video.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Video file too large. Max size: %d bytes", h.maxFileSize),
			})
		}

		_, path, err := h.storageService.SaveFile(video, "video")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to save video file: %v", err),
			})
		}
		videoPath = path
	}

	app, err := h.appService.Submit(c.Context(), services.SubmissionInput{
		CandidateID: candidateID,
		JobID:       jobID,
		VideoPath:   videoPath,
		TechScore:   techScore,
	})
	if err != nil {
		return pipelineError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

// HandleList handles GET /application/list. Optional query params job_id
// and status (case-insensitive) filter the listing; rows come back highest
// global score first.
func (h *ApplicationHandler) HandleList(c *fiber.Ctx) error {
	var jobFilter *uuid.UUID
	if raw := c.Query("job_id"); raw != "" {
		jobID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid job_id format",
			})
		}
		jobFilter = &jobID
	}

	var statusFilter models.ApplicationStatus
	if raw := c.Query("status"); raw != "" {
		status, ok := models.ParseApplicationStatus(raw)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "status must be one of: pending, accepted, rejected",
			})
		}
		statusFilter = status
	}

	apps, err := h.appRepo.ListRanked(jobFilter, statusFilter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list applications",
		})
	}

	rows := make([]models.ApplicationRow, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, models.ApplicationRow{
			ApplicationID:   app.ID.String(),
			CandidateName:   app.Candidate.Name,
			JobTitle:        app.Job.Title,
			CVScore:         app.CVScore,
			SoftskillsScore: app.SoftskillsScore,
			TechScore:       app.TechScore,
			GlobalScore:     app.GlobalScore,
			Softskills:      app.Softskills,
			Feedback:        app.Feedback,
			Transcript:      app.Transcript,
			MiniReport:      app.MiniReport,
			Status:          string(app.Status),
			RHNote:          app.RHNote,
			DateApplied:     app.DateApplied,
		})
	}

	return c.JSON(rows)
}

// HandleAccept handles POST /application/:id/accept
func (h *ApplicationHandler) HandleAccept(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	warning, err := h.appService.Accept(c.Context(), appID)
	if err != nil {
		return pipelineError(c, err)
	}

	return c.JSON(models.ActionResponse{
		ID:      appID.String(),
		Status:  string(models.StatusAccepted),
		Warning: warning,
	})
}

// HandleRefuse handles POST /application/:id/refuse
func (h *ApplicationHandler) HandleRefuse(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	warning, err := h.appService.Refuse(c.Context(), appID)
	if err != nil {
		return pipelineError(c, err)
	}

	return c.JSON(models.ActionResponse{
		ID:      appID.String(),
		Status:  string(models.StatusRejected),
		Warning: warning,
	})
}

// HandleAddNote handles POST /application/:id/add-note
func (h *ApplicationHandler) HandleAddNote(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	var req models.NoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.appService.AddNote(appID, req.Note); err != nil {
		return pipelineError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":   appID.String(),
		"note": req.Note,
	})
}

// pipelineError maps scoring pipeline error kinds to HTTP statuses.
func pipelineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, services.ErrAnalysis), errors.Is(err, services.ErrGeneration), errors.Is(err, services.ErrLLMTimeout):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
