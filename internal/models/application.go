package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// ParseApplicationStatus reads a status value case-insensitively, so
// "ACCEPTED" and "accepted" filter the same rows.
func ParseApplicationStatus(raw string) (ApplicationStatus, bool) {
	status := ApplicationStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch status {
	case StatusPending, StatusAccepted, StatusRejected:
		return status, true
	}
	return "", false
}

type Application struct {
	ID              uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID     uuid.UUID         `gorm:"type:uuid;not null" json:"candidate_id"`
	JobID           uuid.UUID         `gorm:"type:uuid;not null" json:"job_id"`
	VideoPath       string            `gorm:"type:text" json:"video_path,omitempty"`
	Softskills      pq.StringArray    `gorm:"type:text[]" json:"softskills"`
	CVScore         *float64          `gorm:"type:decimal(5,2)" json:"cv_score"`
	SoftskillsScore *float64          `gorm:"type:decimal(5,2)" json:"softskills_score"`
	TechScore       *float64          `gorm:"type:decimal(5,2)" json:"tech_score"`
	GlobalScore     *float64          `gorm:"type:decimal(5,2)" json:"global_score"`
	Feedback        string            `gorm:"type:text" json:"feedback"`
	Transcript      string            `gorm:"type:text" json:"transcript"`
	MiniReport      string            `gorm:"type:text" json:"mini_report"`
	Status          ApplicationStatus `gorm:"not null;default:'pending'" json:"status"`
	RHNote          *string           `gorm:"type:text" json:"rh_note,omitempty"`
	DateApplied     time.Time         `gorm:"type:timestamp;default:now()" json:"date_applied"`
	UpdatedAt       time.Time         `gorm:"type:timestamp;default:now()" json:"updated_at"`

	// Relations
	Candidate Candidate `gorm:"foreignKey:CandidateID" json:"-"`
	Job       JobOffer  `gorm:"foreignKey:JobID" json:"-"`
}

func (Application) TableName() string {
	return "applications"
}
