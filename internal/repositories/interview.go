package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartrecruit/recruitflow/internal/models"
)

type InterviewRepository interface {
	Create(interview *models.Interview) error
	FindByApplicationID(appID uuid.UUID) (*models.Interview, error)
	List() ([]models.Interview, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(interview *models.Interview) error {
	if err := r.db.Create(interview).Error; err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}
	return nil
}

// List returns all scheduled interviews, soonest first, with the application
// and its candidate and job preloaded for the recruiter-facing listing.
func (r *interviewRepository) List() ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.
		Preload("Application.Candidate").
		Preload("Application.Job").
		Order("interview_datetime ASC").
		Find(&interviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return interviews, nil
}

func (r *interviewRepository) FindByApplicationID(appID uuid.UUID) (*models.Interview, error) {
	var interview models.Interview
	if err := r.db.Where("application_id = ?", appID).First(&interview).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("interview not found")
		}
		return nil, fmt.Errorf("failed to find interview: %w", err)
	}
	return &interview, nil
}
