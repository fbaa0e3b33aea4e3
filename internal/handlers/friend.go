package handlers

import (
	"net/http"
	"strings"

	"campconnect/internal/db"
	"campconnect/internal/models"
	"campconnect/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FriendHandler struct{}

func NewFriendHandler() *FriendHandler {
	return &FriendHandler{}
}

// Search finds users by name, excluding the caller
func (h *FriendHandler) Search(c *gin.Context) {
	user := MustUser(c)
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"users": []models.PublicUser{}})
		return
	}

	var users []models.User
	db.DB.Select("id, name, email, college, avatar_url").
		Where("name ILIKE ? AND id <> ?", "%"+query+"%", user.ID).
		Limit(10).
		Find(&users)

	results := make([]models.PublicUser, len(users))
	for i := range users {
		results[i] = users[i].Public()
	}
	c.JSON(http.StatusOK, gin.H{"users": results})
}

// List returns the caller's accepted friends
func (h *FriendHandler) List(c *gin.Context) {
	user := MustUser(c)

	var friendships []models.Friendship
	if err := db.DB.Preload("User1").Preload("User2").
		Where("(user1_id = ? OR user2_id = ?) AND status = ?", user.ID, user.ID, models.RequestAccepted).
		Find(&friendships).Error; err != nil {
		RespondError(c, http.StatusInternalServerError, "Failed to load friends")
		return
	}

	type friendView struct {
		models.PublicUser
		FriendshipID uint `json:"friendship_id"`
	}
	friends := make([]friendView, 0, len(friendships))
	for _, f := range friendships {
		other := f.User2
		if f.User1ID != user.ID {
			other = f.User1
		}
		friends = append(friends, friendView{PublicUser: other.Public(), FriendshipID: f.ID})
	}
	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

// Requests returns pending requests sent to the caller
func (h *FriendHandler) Requests(c *gin.Context) {
	user := MustUser(c)

	var requests []models.FriendRequest
	db.DB.Preload("Sender").
		Where("receiver_id = ? AND status = ?", user.ID, models.RequestPending).
		Find(&requests)
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// Sent returns the caller's outgoing pending requests
func (h *FriendHandler) Sent(c *gin.Context) {
	user := MustUser(c)

	var requests []models.FriendRequest
	db.DB.Preload("Receiver").
		Where("sender_id = ? AND status = ?", user.ID, models.RequestPending).
		Find(&requests)
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

type friendRequestBody struct {
	ReceiverID uint `json:"receiver_id"`
}

// Send creates a pending friend request
func (h *FriendHandler) Send(c *gin.Context) {
	user := MustUser(c)

	var req friendRequestBody
	if err := c.ShouldBindJSON(&req); err != nil || req.ReceiverID == 0 {
		RespondError(c, http.StatusBadRequest, "receiver_id is required")
		return
	}
	if req.ReceiverID == user.ID {
		RespondError(c, http.StatusBadRequest, "You cannot befriend yourself")
		return
	}

	var receiver models.User
	if err := db.DB.First(&receiver, req.ReceiverID).Error; err != nil {
		RespondError(c, http.StatusNotFound, "User not found")
		return
	}

	if areFriends(user.ID, req.ReceiverID) {
		RespondError(c, http.StatusConflict, "Already friends")
		return
	}

	var existing models.FriendRequest
	if err := db.DB.Where(
		"((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)) AND status = ?",
		user.ID, req.ReceiverID, req.ReceiverID, user.ID, models.RequestPending,
	).First(&existing).Error; err == nil {
		RespondError(c, http.StatusConflict, "A request is already pending")
		return
	}

	request := models.FriendRequest{SenderID: user.ID, ReceiverID: req.ReceiverID, Status: models.RequestPending}
	if err := db.DB.Create(&request).Error; err != nil {
		RespondError(c, http.StatusInternalServerError, "Failed to send request")
		return
	}

	db.DB.Preload("Receiver").First(&request, request.ID)
	c.JSON(http.StatusCreated, gin.H{"request": request})
}

// Accept marks a request accepted and records the friendship, storing the
// smaller user ID first so the pair has one canonical row.
func (h *FriendHandler) Accept(c *gin.Context) {
	user := MustUser(c)
	id := utils.StringToUint(c.Param("id"))

	var request models.FriendRequest
	if err := db.DB.Where("id = ? AND receiver_id = ? AND status = ?", id, user.ID, models.RequestPending).
		First(&request).Error; err != nil {
		RespondError(c, http.StatusNotFound, "Request not found")
		return
	}

	user1, user2 := request.SenderID, request.ReceiverID
	if user1 > user2 {
		user1, user2 = user2, user1
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&request).Update("status", models.RequestAccepted).Error; err != nil {
			return err
		}
		friendship := models.Friendship{User1ID: user1, User2ID: user2, Status: models.RequestAccepted}
		return tx.Create(&friendship).Error
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Failed to accept request")
		return
	}
	ok(c)
}

// Reject declines a pending request
func (h *FriendHandler) Reject(c *gin.Context) {
	user := MustUser(c)
	id := utils.StringToUint(c.Param("id"))

	result := db.DB.Model(&models.FriendRequest{}).
		Where("id = ? AND receiver_id = ? AND status = ?", id, user.ID, models.RequestPending).
		Update("status", models.RequestRejected)
	if result.Error != nil || result.RowsAffected == 0 {
		RespondError(c, http.StatusNotFound, "Request not found")
		return
	}
	ok(c)
}

func areFriends(a, b uint) bool {
	if a > b {
		a, b = b, a
	}
	var friendship models.Friendship
	return db.DB.Where("user1_id = ? AND user2_id = ? AND status = ?", a, b, models.RequestAccepted).
		First(&friendship).Error == nil
}
