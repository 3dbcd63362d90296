package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type JobOffer struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title           string          `gorm:"type:text;not null" json:"title"`
	Description     string          `gorm:"type:text" json:"description"`
	DiplomaType     string          `gorm:"type:text" json:"diploma_type"`
	Filiere         string          `gorm:"type:text" json:"filiere"`
	EducationLevel  string          `gorm:"type:text" json:"education_level"`
	ExperienceYears int             `gorm:"default:0" json:"experience_years"`
	Requirements    json.RawMessage `gorm:"type:jsonb" json:"requirements"`
	CreatedAt       time.Time       `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (j *JobOffer) TableName() string {
	return "job_offers"
}

// Requirement is one {skill, level} pair of a job offer.
type Requirement struct {
	Skill string `json:"skill"`
	Level string `json:"level"`
}
