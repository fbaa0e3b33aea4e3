package handlers

import (
	"net/http"
	"strings"

	"campconnect/internal/db"
	"campconnect/internal/models"
	"campconnect/internal/services"
	"campconnect/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// List returns the assembled two-level comment thread for a subject.
// Authors are enriched with a single batched users query.
func (h *CommentHandler) List(c *gin.Context) {
	subjectType := c.Param("type") // "event" or "project"
	id := utils.StringToUint(c.Param("id"))

	var nodes []services.ThreadNode
	switch subjectType {
	case "event":
		var comments []models.EventComment
		if err := db.DB.Where("event_id = ?", id).Find(&comments).Error; err != nil {
			RespondError(c, http.StatusInternalServerError, "Failed to load comments")
			return
		}
		nodes = services.EventCommentNodes(comments)
	case "project":
		var comments []models.ProjectComment
		if err := db.DB.Where("project_id = ?", id).Find(&comments).Error; err != nil {
			RespondError(c, http.StatusInternalServerError, "Failed to load comments")
			return
		}
		nodes = services.ProjectCommentNodes(comments)
	default:
		RespondError(c, http.StatusBadRequest, "Unknown comment subject")
		return
	}

	authors := fetchAuthors(services.AuthorIDs(nodes))
	thread := services.AssembleThread(nodes, authors)

	for i := range thread {
		thread[i].ContentHTML = utils.RenderMarkdown(thread[i].Content)
		for j := range thread[i].Replies {
			thread[i].Replies[j].ContentHTML = utils.RenderMarkdown(thread[i].Replies[j].Content)
		}
	}

	c.JSON(http.StatusOK, gin.H{"comments": thread})
}

type commentRequest struct {
	Content  string `json:"content"`
	ParentID *uint  `json:"parent_id"`
}

// Create adds a comment or a reply. A reply's parent must exist on the same
// subject and must itself be top-level, so threads stay two levels deep.
func (h *CommentHandler) Create(c *gin.Context) {
	user := MustUser(c)
	subjectType := c.Param("type")
	id := utils.StringToUint(c.Param("id"))

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		RespondError(c, http.StatusBadRequest, "Comment cannot be empty")
		return
	}

	switch subjectType {
	case "event":
		var event models.Event
		if err := db.DB.First(&event, id).Error; err != nil {
			RespondError(c, http.StatusNotFound, "Event not found")
			return
		}
		if req.ParentID != nil {
			var parent models.EventComment
			if err := db.DB.Where("id = ? AND event_id = ?", *req.ParentID, id).First(&parent).Error; err != nil {
				RespondError(c, http.StatusBadRequest, "Parent comment not found")
				return
			}
			if parent.ParentID != nil {
				RespondError(c, http.StatusBadRequest, "Replies cannot be nested further")
				return
			}
		}
		comment := models.EventComment{EventID: id, UserID: user.ID, ParentID: req.ParentID, Content: content}
		if err := db.DB.Create(&comment).Error; err != nil {
			RespondError(c, http.StatusInternalServerError, "Failed to save comment")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"comment": comment})
	case "project":
		var project models.Project
		if err := db.DB.First(&project, id).Error; err != nil {
			RespondError(c, http.StatusNotFound, "Project not found")
			return
		}
		if req.ParentID != nil {
			var parent models.ProjectComment
			if err := db.DB.Where("id = ? AND project_id = ?", *req.ParentID, id).First(&parent).Error; err != nil {
				RespondError(c, http.StatusBadRequest, "Parent comment not found")
				return
			}
			if parent.ParentID != nil {
				RespondError(c, http.StatusBadRequest, "Replies cannot be nested further")
				return
			}
		}
		comment := models.ProjectComment{ProjectID: id, UserID: user.ID, ParentID: req.ParentID, Content: content}
		if err := db.DB.Create(&comment).Error; err != nil {
			RespondError(c, http.StatusInternalServerError, "Failed to save comment")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"comment": comment})
	default:
		RespondError(c, http.StatusBadRequest, "Unknown comment subject")
	}
}
