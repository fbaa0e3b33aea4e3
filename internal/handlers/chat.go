package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"campconnect/internal/db"
	"campconnect/internal/models"
	"campconnect/internal/services"
	"campconnect/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type ChatHandler struct {
	hub      *services.ChatHub
	upgrader websocket.Upgrader
}

func NewChatHandler() *ChatHandler {
	return &ChatHandler{
		hub: services.GetChatHub(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Session cookie auth already gates the endpoint
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// MessageView is a message enriched with its sender's public profile.
type MessageView struct {
	models.Message
	Sender models.PublicUser `json:"sender"`
}

// History returns the full conversation with a friend, oldest first.
// Re-fetching this is also the recovery path after a missed realtime
// notification.
func (h *ChatHandler) History(c *gin.Context) {
	user := MustUser(c)
	friendID := utils.StringToUint(c.Param("friendID"))

	if !areFriends(user.ID, friendID) {
		RespondError(c, http.StatusForbidden, "You can only message friends")
		return
	}

	chatID := services.ChatKey(user.ID, friendID)

	var messages []models.Message
	if err := db.DB.Where("chat_id = ?", chatID).Order("created_at ASC").Find(&messages).Error; err != nil {
		RespondError(c, http.StatusInternalServerError, "Failed to load messages")
		return
	}

	senderIDs := make([]uint, 0, 2)
	seen := make(map[uint]bool)
	for _, m := range messages {
		if !seen[m.SenderID] {
			seen[m.SenderID] = true
			senderIDs = append(senderIDs, m.SenderID)
		}
	}
	authors := fetchAuthors(senderIDs)

	views := make([]MessageView, len(messages))
	for i, m := range messages {
		sender, found := authors[m.SenderID]
		if !found {
			sender = models.PublicUser{ID: m.SenderID, Name: "Unknown"}
		}
		views[i] = MessageView{Message: m, Sender: sender}
	}

	c.JSON(http.StatusOK, gin.H{"chat_id": chatID, "messages": views})
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// Send stores a message and pushes it to the conversation channel
func (h *ChatHandler) Send(c *gin.Context) {
	user := MustUser(c)
	friendID := utils.StringToUint(c.Param("friendID"))

	if !areFriends(user.ID, friendID) {
		RespondError(c, http.StatusForbidden, "You can only message friends")
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	content := strings.TrimSpace(utils.SanitizeText(req.Content))
	if content == "" {
		RespondError(c, http.StatusBadRequest, "Message cannot be empty")
		return
	}

	message := models.Message{
		ChatID:     services.ChatKey(user.ID, friendID),
		SenderID:   user.ID,
		ReceiverID: friendID,
		Content:    content,
	}
	if err := db.DB.Create(&message).Error; err != nil {
		RespondError(c, http.StatusInternalServerError, "Failed to send message")
		return
	}

	view := MessageView{Message: message, Sender: user.Public()}
	h.hub.Publish(message.ChatID, view)

	c.JSON(http.StatusCreated, gin.H{"message": view})
}

// Subscribe upgrades to a websocket on the conversation channel. Inserted
// messages arrive as JSON MessageView payloads; the client re-fetches
// history after any disconnect.
func (h *ChatHandler) Subscribe(c *gin.Context) {
	user := MustUser(c)
	friendID := utils.StringToUint(c.Param("friendID"))

	if !areFriends(user.ID, friendID) {
		RespondError(c, http.StatusForbidden, "You can only message friends")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	chatID := services.ChatKey(user.ID, friendID)
	h.hub.Subscribe(chatID, conn)

	// Block reading until the peer goes away, then clean up
	go func() {
		defer func() {
			h.hub.Unsubscribe(chatID, conn)
			conn.Close()
		}()
		conn.SetReadLimit(512)
		conn.SetReadDeadline(time.Now().Add(12 * time.Hour))
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
