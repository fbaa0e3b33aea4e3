package models

import (
	"time"
)

const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

type FriendRequest struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	Sender     User      `gorm:"foreignKey:SenderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sender"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	Receiver   User      `gorm:"foreignKey:ReceiverID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"receiver"`
	Status     string    `gorm:"size:10;default:'pending';index" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// Friendship rows always store the smaller user ID first, so one pair maps
// to exactly one row regardless of who accepted.
type Friendship struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	User1ID   uint      `gorm:"not null;index;uniqueIndex:idx_friend_pair" json:"user1_id"`
	User1     User      `gorm:"foreignKey:User1ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user1"`
	User2ID   uint      `gorm:"not null;index;uniqueIndex:idx_friend_pair" json:"user2_id"`
	User2     User      `gorm:"foreignKey:User2ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user2"`
	Status    string    `gorm:"size:10;default:'accepted'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
