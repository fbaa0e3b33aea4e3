package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	Email      string         `gorm:"uniqueIndex;not null" json:"email"`
	Password   string         `gorm:"not null" json:"-"` // Hash
	College    string         `gorm:"size:120" json:"college"`
	Year       string         `gorm:"size:20" json:"year"`
	Department string         `gorm:"size:120" json:"department"`
	Bio        string         `gorm:"size:500" json:"bio"`
	AvatarURL  string         `json:"avatar_url"`
	Skills     pq.StringArray `gorm:"type:text[]" json:"skills"`
	Interests  pq.StringArray `gorm:"type:text[]" json:"interests"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	// No DeletedAt for hard delete
}

// PublicUser is the author shape embedded in comments, members and messages.
type PublicUser struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	College   string `json:"college,omitempty"`
	AvatarURL string `json:"avatar_url"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, College: u.College, AvatarURL: u.AvatarURL}
}
