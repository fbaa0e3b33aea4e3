package models

import (
	"time"

	"github.com/lib/pq"
)

type Project struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	Tags           pq.StringArray `gorm:"type:text[]" json:"tags"`
	RequiredSkills pq.StringArray `gorm:"type:text[]" json:"required_skills"`
	LookingFor     string         `gorm:"size:300" json:"looking_for"`
	ImageURL       string         `json:"image_url"`
	Status         string         `gorm:"size:20;default:'idea'" json:"status"` // idea, active, completed
	OwnerID        uint           `gorm:"not null;index" json:"owner_id"`
	Owner          User           `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Members []ProjectMember `json:"members,omitempty"`
}

type ProjectMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;index;uniqueIndex:idx_project_member" json:"project_id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_project_member" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Role      string    `gorm:"size:30;default:'member'" json:"role"` // owner, member
	IsOwner   bool      `gorm:"default:false" json:"is_owner"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectPrivateData holds fields only members may read (repo link).
// Access is enforced in the handler, not by the store.
type ProjectPrivateData struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;uniqueIndex" json:"project_id"`
	RepoLink  string    `json:"repo_link"`
	CreatedAt time.Time `json:"created_at"`
}
