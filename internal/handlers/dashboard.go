package handlers

import (
	"net/http"
	"time"

	"campconnect/internal/db"
	"campconnect/internal/models"
	"campconnect/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Overview assembles the dashboard: stats, the caller's three most recent
// projects, the next three events, and the top-3 suggestion widgets.
// Suggestions are recomputed on every request.
func (h *DashboardHandler) Overview(c *gin.Context) {
	user := MustUser(c)
	today := startOfToday()

	// Projects the caller belongs to, newest first
	var memberships []models.ProjectMember
	db.DB.Where("user_id = ?", user.ID).Find(&memberships)

	projectIDs := make([]uint, len(memberships))
	for i, m := range memberships {
		projectIDs[i] = m.ProjectID
	}

	var recentProjects []models.Project
	if len(projectIDs) > 0 {
		db.DB.Where("id IN ?", projectIDs).Order("created_at DESC").Limit(3).Find(&recentProjects)
	}

	var upcomingEvents []models.Event
	db.DB.Where("date >= ?", today).Order("date ASC").Limit(3).Find(&upcomingEvents)

	suggestedUsers, suggestedEvents := suggestionsFor(user, 20, 10, services.DashboardSuggestionLimit)

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"active_projects": len(memberships),
			"upcoming_events": len(upcomingEvents),
			"skills":          len(user.Skills),
		},
		"recent_projects":  recentProjects,
		"upcoming_events":  upcomingEvents,
		"suggested_users":  suggestedUsers,
		"suggested_events": suggestedEvents,
	})
}

// suggestionsFor fetches candidate pools and runs the matching engine.
func suggestionsFor(user *models.User, userPool, eventPool, limit int) ([]services.SuggestedUser, []services.SuggestedEvent) {
	var candidates []models.User
	db.DB.Where("id <> ?", user.ID).Limit(userPool).Find(&candidates)

	var events []models.Event
	db.DB.Where("date >= ?", startOfToday()).Order("date ASC").Limit(eventPool).Find(&events)

	return services.SuggestUsers(*user, candidates, limit),
		services.SuggestEvents(*user, events, limit)
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
