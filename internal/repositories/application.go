package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartrecruit/recruitflow/internal/models"
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id uuid.UUID) (*models.Application, error)
	ListRanked(jobID *uuid.UUID, status models.ApplicationStatus) ([]models.Application, error)
	UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error
	UpdateNote(id uuid.UUID, note string) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(app *models.Application) error {
	if err := r.db.Create(app).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *applicationRepository) FindByID(id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := r.db.Where("id = ?", id).First(&app).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("application not found")
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

// ListRanked returns applications with their candidate and job preloaded,
// highest global score first. Unscored applications sort last. An empty
// status means no status filter.
func (r *applicationRepository) ListRanked(jobID *uuid.UUID, status models.ApplicationStatus) ([]models.Application, error) {
	query := r.db.
		Preload("Candidate").
		Preload("Job").
		Order("global_score DESC NULLS LAST")

	if jobID != nil {
		query = query.Where("job_id = ?", *jobID)
	}

	if status != "" {
		query = query.Where("status = ?", status)
	}

	var apps []models.Application
	if err := query.Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return apps, nil
}

func (r *applicationRepository) UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("application not found")
	}

	return nil
}

func (r *applicationRepository) UpdateNote(id uuid.UUID, note string) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"rh_note":    note,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update note: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("application not found")
	}

	return nil
}
