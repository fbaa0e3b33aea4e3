package handlers

import (
	"net/http"

	"campconnect/internal/db"
	"campconnect/internal/models"
	"campconnect/internal/services"
	"campconnect/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

// Summary returns the vote aggregate for one subject. Anonymous viewers get
// counts without personal vote state.
func (h *VoteHandler) Summary(c *gin.Context) {
	subjectType := c.Param("type") // "event" or "project"
	id := utils.StringToUint(c.Param("id"))

	viewerID := uint(0)
	if user := CurrentUser(c); user != nil {
		viewerID = user.ID
	}

	rows, err := loadVoteRows(db.DB, subjectType, id)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Unknown vote subject")
		return
	}

	c.JSON(http.StatusOK, services.SummarizeVotes(rows, viewerID))
}

type castRequest struct {
	VoteType string `json:"vote_type"`
}

// Cast applies one vote: create when none exists, toggle off on a same-kind
// recast, flip in place otherwise. The read-check-then-write runs in a
// transaction and the composite unique index covers concurrent double
// submits. The response is always a full recount.
func (h *VoteHandler) Cast(c *gin.Context) {
	user := MustUser(c)
	subjectType := c.Param("type")
	id := utils.StringToUint(c.Param("id"))

	var req castRequest
	if err := c.ShouldBindJSON(&req); err != nil || !services.ValidVoteType(req.VoteType) {
		RespondError(c, http.StatusBadRequest, "vote_type must be upvote or downvote")
		return
	}

	var err error
	switch subjectType {
	case "event":
		var event models.Event
		if err := db.DB.First(&event, id).Error; err != nil {
			RespondError(c, http.StatusNotFound, "Event not found")
			return
		}
		err = castEventVote(id, user.ID, req.VoteType)
	case "project":
		var project models.Project
		if err := db.DB.First(&project, id).Error; err != nil {
			RespondError(c, http.StatusNotFound, "Project not found")
			return
		}
		err = castProjectVote(id, user.ID, req.VoteType)
	default:
		RespondError(c, http.StatusBadRequest, "Unknown vote subject")
		return
	}
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Failed to save vote")
		return
	}

	rows, _ := loadVoteRows(db.DB, subjectType, id)
	c.JSON(http.StatusOK, services.SummarizeVotes(rows, user.ID))
}

func castEventVote(eventID, userID uint, voteType string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.EventVote
		found := tx.Where("event_id = ? AND user_id = ?", eventID, userID).First(&existing).Error == nil

		existingType := ""
		if found {
			existingType = existing.VoteType
		}

		switch services.DecideVote(existingType, voteType) {
		case services.VoteCreate:
			return tx.Create(&models.EventVote{EventID: eventID, UserID: userID, VoteType: voteType}).Error
		case services.VoteDelete:
			return tx.Delete(&existing).Error
		default:
			return tx.Model(&existing).Update("vote_type", voteType).Error
		}
	})
}

func castProjectVote(projectID, userID uint, voteType string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.ProjectVote
		found := tx.Where("project_id = ? AND user_id = ?", projectID, userID).First(&existing).Error == nil

		existingType := ""
		if found {
			existingType = existing.VoteType
		}

		switch services.DecideVote(existingType, voteType) {
		case services.VoteCreate:
			return tx.Create(&models.ProjectVote{ProjectID: projectID, UserID: userID, VoteType: voteType}).Error
		case services.VoteDelete:
			return tx.Delete(&existing).Error
		default:
			return tx.Model(&existing).Update("vote_type", voteType).Error
		}
	})
}

func loadVoteRows(conn *gorm.DB, subjectType string, id uint) ([]services.VoteRow, error) {
	switch subjectType {
	case "event":
		var votes []models.EventVote
		if err := conn.Where("event_id = ?", id).Find(&votes).Error; err != nil {
			return nil, err
		}
		rows := make([]services.VoteRow, len(votes))
		for i, v := range votes {
			rows[i] = services.VoteRow{UserID: v.UserID, VoteType: v.VoteType}
		}
		return rows, nil
	case "project":
		var votes []models.ProjectVote
		if err := conn.Where("project_id = ?", id).Find(&votes).Error; err != nil {
			return nil, err
		}
		rows := make([]services.VoteRow, len(votes))
		for i, v := range votes {
			rows[i] = services.VoteRow{UserID: v.UserID, VoteType: v.VoteType}
		}
		return rows, nil
	default:
		return nil, gorm.ErrRecordNotFound
	}
}
