package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartrecruit/recruitflow/internal/models"
)

type JobOfferRepository interface {
	Create(job *models.JobOffer) error
	FindByID(id uuid.UUID) (*models.JobOffer, error)
	List() ([]models.JobOffer, error)
}

type jobOfferRepository struct {
	db *gorm.DB
}

func NewJobOfferRepository(db *gorm.DB) JobOfferRepository {
	return &jobOfferRepository{db: db}
}

// Create implements JobOfferRepository.
func (r *jobOfferRepository) Create(job *models.JobOffer) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job offer: %w", err)
	}

	return nil
}

// FindByID implements JobOfferRepository.
func (r *jobOfferRepository) FindByID(id uuid.UUID) (*models.JobOffer, error) {
	var job models.JobOffer
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("job offer not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find job offer: %w", err)
	}

	return &job, nil
}

// List implements JobOfferRepository.
func (r *jobOfferRepository) List() ([]models.JobOffer, error) {
	var jobs []models.JobOffer
	if err := r.db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list job offers: %w", err)
	}

	return jobs, nil
}
