package handlers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smartrecruit/recruitflow/internal/models"
	"smartrecruit/recruitflow/internal/repositories"
	"smartrecruit/recruitflow/internal/services"
)

type JobHandler struct {
	jobRepo     repositories.JobOfferRepository
	quizService services.QuizService
}

func NewJobHandler(jobRepo repositories.JobOfferRepository, quizService services.QuizService) *JobHandler {
	return &JobHandler{
		jobRepo:     jobRepo,
		quizService: quizService,
	}
}

// HandleCreateJob handles POST /job/create
func (h *JobHandler) HandleCreateJob(c *fiber.Ctx) error {
	var req models.CreateJobRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title is required",
		})
	}

	if req.ExperienceYears < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "experience_years must be >= 0",
		})
	}

	requirements, err := json.Marshal(req.Requirements)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid requirements",
		})
	}

	job := &models.JobOffer{
		ID:              uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		DiplomaType:     req.DiplomaType,
		Filiere:         req.Filiere,
		EducationLevel:  req.EducationLevel,
		ExperienceYears: req.ExperienceYears,
		Requirements:    requirements,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := h.jobRepo.Create(job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create job offer",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

// HandleListJobs handles GET /job/list
func (h *JobHandler) HandleListJobs(c *fiber.Ctx) error {
	jobs, err := h.jobRepo.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list job offers",
		})
	}

	return c.JSON(jobs)
}

// HandleGenerateQuiz handles GET /job/:id/generate-quiz
func (h *JobHandler) HandleGenerateQuiz(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	job, err := h.jobRepo.FindByID(jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job offer not found",
		})
	}

	questions, err := h.quizService.GenerateQuiz(c.Context(), job)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to generate quiz",
		})
	}

	return c.JSON(models.QuizResponse{Questions: questions})
}

// HandleGradeQuiz handles POST /job/:id/grade-quiz. Grading is done
// server-side so the resulting tech score is the one fed to the composite.
func (h *JobHandler) HandleGradeQuiz(c *fiber.Ctx) error {
	var req models.GradeQuizRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if len(req.Questions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "questions are required",
		})
	}

	score := h.quizService.GradeQuiz(req.Questions, req.Answers)

	return c.JSON(models.GradeQuizResponse{TechScore: score})
}
