package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"smartrecruit/recruitflow/internal/models"
	"smartrecruit/recruitflow/internal/repositories"
	"smartrecruit/recruitflow/internal/services"
)

type CandidateHandler struct {
	candidateRepo  repositories.CandidateRepository
	storageService services.StorageService
	cvParser       services.CVParserService
	maxFileSize    int64
}

func NewCandidateHandler(
	candidateRepo repositories.CandidateRepository,
	storageService services.StorageService,
	cvParser services.CVParserService,
	maxFileSize int64,
) *CandidateHandler {
	return &CandidateHandler{
		candidateRepo:  candidateRepo,
		storageService: storageService,
		cvParser:       cvParser,
		maxFileSize:    maxFileSize,
	}
}

// HandleUploadCV handles POST /candidate/upload-cv. The CV is stored, its
// text extracted and parsed into candidate fields, and a Candidate record is
// created from the normalized result.
func (h *CandidateHandler) HandleUploadCV(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "CV file is required (field 'file')",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("CV file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file, "cv")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save CV file: %v", err),
		})
	}

	info, _, err := h.cvParser.ParseCV(c.Context(), filePath)
	if err != nil {
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to parse CV: %v", err),
		})
	}

	candidate := candidateFromCVInfo(info)
	if err := h.candidateRepo.Create(candidate); err != nil {
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save candidate record",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadCVResponse{
		CandidateID: candidate.ID.String(),
		Filename:    filename,
		Infos:       *info,
	})
}

// candidateFromCVInfo builds the Candidate row from extracted fields. Every
// list field goes through the normalizer, so a string-encoded extraction
// degrades to an empty list instead of failing the upload.
func candidateFromCVInfo(info *models.CVInfo) *models.Candidate {
	address := ""
	if info.Address != nil {
		address = *info.Address
	}

	return &models.Candidate{
		ID:         uuid.New(),
		Name:       info.Name,
		Emails:     pq.StringArray(info.Emails),
		Phones:     pq.StringArray(info.Phones),
		Linkedin:   pq.StringArray(info.Linkedin),
		Address:    address,
		Education:  marshalList(info.Education),
		Experience: marshalList(info.Experience),
		Skills:     pq.StringArray(services.NormalizeStrings(info.Skills)),
		Languages:  marshalList(info.Languages),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

func marshalList(raw any) json.RawMessage {
	data, err := json.Marshal(services.NormalizeList(raw))
	if err != nil {
		return json.RawMessage("[]")
	}
	return data
}
