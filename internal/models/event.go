package models

import (
	"time"

	"github.com/lib/pq"
)

type Event struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Title            string         `gorm:"not null" json:"title"`
	Description      string         `gorm:"type:text" json:"description"`
	EventType        string         `gorm:"size:30;not null;index" json:"event_type"` // Hackathon, Workshop, Competition, Seminar, Other
	Date             time.Time      `gorm:"not null;index" json:"date"`
	Domains          pq.StringArray `gorm:"type:text[]" json:"domains"`
	Location         string         `gorm:"size:200" json:"location"`
	Organizer        string         `gorm:"size:120" json:"organizer"`
	OrganizerID      uint           `gorm:"not null;index" json:"organizer_id"`
	RegistrationLink string         `json:"registration_link"`
	ImageURL         string         `json:"image_url"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
