package handlers

import (
	"net/http"

	"campconnect/internal/db"
	"campconnect/internal/middleware"
	"campconnect/internal/models"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the logged-in user from the request context, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}

// MustUser returns the logged-in user behind AuthRequired routes.
func MustUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.CheckUserKey).(*models.User)
}

// RespondError sends a JSON error payload
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// fetchAuthors loads public author profiles for a set of user IDs with one
// query. Missing rows simply stay absent; callers substitute a placeholder.
func fetchAuthors(userIDs []uint) map[uint]models.PublicUser {
	authors := make(map[uint]models.PublicUser, len(userIDs))
	if len(userIDs) == 0 {
		return authors
	}

	var users []models.User
	if err := db.DB.Select("id, name, college, avatar_url").Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		// Degrade to placeholders for the whole batch rather than failing
		return authors
	}
	for i := range users {
		authors[users[i].ID] = users[i].Public()
	}
	return authors
}

// ok is a small helper for bare success responses
func ok(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
