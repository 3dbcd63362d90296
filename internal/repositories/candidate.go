package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartrecruit/recruitflow/internal/models"
)

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	FindByID(id uuid.UUID) (*models.Candidate, error)
	UpdateVideoPath(id uuid.UUID, videoPath string) error
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// Create implements CandidateRepository.
func (r *candidateRepository) Create(candidate *models.Candidate) error {
	if err := r.db.Create(candidate).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}

	return nil
}

// FindByID implements CandidateRepository.
func (r *candidateRepository) FindByID(id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("candidate not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}

	return &candidate, nil
}

// UpdateVideoPath implements CandidateRepository.
func (r *candidateRepository) UpdateVideoPath(id uuid.UUID, videoPath string) error {
	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Update("video_path", videoPath)

	if result.Error != nil {
		return fmt.Errorf("failed to update video path: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate not found")
	}

	return nil
}
