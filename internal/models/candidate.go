package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Candidate struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name       string          `gorm:"type:text" json:"name"`
	Emails     pq.StringArray  `gorm:"type:text[]" json:"emails"`
	Phones     pq.StringArray  `gorm:"type:text[]" json:"phones"`
	Linkedin   pq.StringArray  `gorm:"type:text[]" json:"linkedin"`
	Address    string          `gorm:"type:text" json:"address"`
	Education  json.RawMessage `gorm:"type:jsonb" json:"education"`
	Experience json.RawMessage `gorm:"type:jsonb" json:"experience"`
	Skills     pq.StringArray  `gorm:"type:text[]" json:"skills"`
	Languages  json.RawMessage `gorm:"type:jsonb" json:"languages"`
	VideoPath  *string         `gorm:"type:text" json:"video_path,omitempty"`
	CreatedAt  time.Time       `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (c *Candidate) TableName() string {
	return "candidates"
}

// Language is one entry of a candidate's languages field.
type Language struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}
