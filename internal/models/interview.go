package models

import (
	"time"

	"github.com/google/uuid"
)

type Interview struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ApplicationID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"application_id"`
	InterviewDatetime time.Time `gorm:"type:timestamp;not null" json:"interview_datetime"`
	Location          string    `gorm:"type:text;not null" json:"location"`
	CreatedAt         time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`

	// Relation
	Application Application `gorm:"foreignKey:ApplicationID" json:"-"`
}

func (Interview) TableName() string {
	return "interviews"
}
