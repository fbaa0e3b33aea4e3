package models

import (
	"time"
)

const (
	VoteUp   = "upvote"
	VoteDown = "downvote"
)

// One row per (voter, subject). The composite unique index backs up the
// read-check-then-write in the vote handler against concurrent double submits.
type EventVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"not null;index;uniqueIndex:idx_event_voter" json:"event_id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_event_voter" json:"user_id"`
	VoteType  string    `gorm:"size:10;not null" json:"vote_type"` // upvote or downvote
	CreatedAt time.Time `json:"created_at"`
}

type ProjectVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;index;uniqueIndex:idx_project_voter" json:"project_id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_project_voter" json:"user_id"`
	VoteType  string    `gorm:"size:10;not null" json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`
}
