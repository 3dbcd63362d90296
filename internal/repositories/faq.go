package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartrecruit/recruitflow/internal/models"
)

type FAQRepository interface {
	Create(entry *models.FAQ) error
	FindByID(id uuid.UUID) (*models.FAQ, error)
	List() ([]models.FAQ, error)
}

type faqRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) FAQRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) Create(entry *models.FAQ) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create faq entry: %w", err)
	}
	return nil
}

func (r *faqRepository) FindByID(id uuid.UUID) (*models.FAQ, error) {
	var entry models.FAQ
	if err := r.db.Where("id = ?", id).First(&entry).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("faq entry not found")
		}
		return nil, fmt.Errorf("failed to find faq entry: %w", err)
	}
	return &entry, nil
}

func (r *faqRepository) List() ([]models.FAQ, error) {
	var entries []models.FAQ
	if err := r.db.Order("created_at ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list faq entries: %w", err)
	}
	return entries, nil
}
