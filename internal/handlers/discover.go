package handlers

import (
	"net/http"

	"campconnect/internal/services"

	"github.com/gin-gonic/gin"
)

type DiscoverHandler struct{}

func NewDiscoverHandler() *DiscoverHandler {
	return &DiscoverHandler{}
}

// Index is the full discovery view: wider candidate pools than the
// dashboard widgets, six suggestions per section.
func (h *DiscoverHandler) Index(c *gin.Context) {
	user := MustUser(c)

	suggestedUsers, suggestedEvents := suggestionsFor(user, 50, 20, services.DiscoverSuggestionLimit)

	c.JSON(http.StatusOK, gin.H{
		"suggested_users":  suggestedUsers,
		"suggested_events": suggestedEvents,
	})
}
