package handlers

import (
	"net/http"
	"strings"
	"time"

	"campconnect/internal/db"
	"campconnect/internal/models"
	"campconnect/internal/services"
	"campconnect/internal/utils"

	"github.com/gin-gonic/gin"
)

const eventListCacheKey = "events:list"

type EventHandler struct{}

func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// List returns events by ascending date, with optional event_type and
// domain filters. The unfiltered listing is cached briefly; vote and
// comment state is fetched separately and never cached.
func (h *EventHandler) List(c *gin.Context) {
	eventType := c.Query("event_type")
	domain := c.Query("domain")

	if eventType == "" && domain == "" {
		if cached := utils.GetCache().Get(eventListCacheKey); cached != nil {
			if events, okCast := cached.([]models.Event); okCast {
				c.JSON(http.StatusOK, gin.H{"events": events})
				return
			}
		}
	}

	query := db.DB.Order("date ASC")
	if eventType != "" && eventType != "All Types" {
		query = query.Where("event_type = ?", eventType)
	}

	var events []models.Event
	if err := query.Find(&events).Error; err != nil {
		RespondError(c, http.StatusInternalServerError, "Failed to load events")
		return
	}

	// Domain filter is an exact membership check against the tag profile
	if domain != "" && domain != "All Domains" {
		filtered := events[:0]
		for _, event := range events {
			for _, d := range event.Domains {
				if d == domain {
					filtered = append(filtered, event)
					break
				}
			}
		}
		events = filtered
	}

	if eventType == "" && domain == "" {
		utils.GetCache().Set(eventListCacheKey, events, 1*time.Minute)
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// Detail returns one event
func (h *EventHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var event models.Event
	if err := db.DB.First(&event, id).Error; err != nil {
		RespondError(c, http.StatusNotFound, "Event not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event})
}

// Create inserts an event from multipart form data with an optional image
func (h *EventHandler) Create(c *gin.Context) {
	user := MustUser(c)

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		RespondError(c, http.StatusBadRequest, "Title is required")
		return
	}

	date, err := time.Parse("2006-01-02", c.PostForm("date"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}

	eventType := c.PostForm("event_type")
	if eventType == "" {
		eventType = "Other"
	}

	imageURL := strings.TrimSpace(c.PostForm("image_url"))
	if header, err := c.FormFile("image"); err == nil {
		if storage := services.GetStorage(); storage != nil {
			if url, err := storage.UploadImage(c.Request.Context(), services.BucketEventImages, header); err == nil {
				imageURL = url
			}
		}
	}

	event := models.Event{
		Title:            title,
		Description:      c.PostForm("description"),
		EventType:        eventType,
		Date:             date,
		Domains:          utils.SplitTagList(c.PostForm("domains")),
		Location:         strings.TrimSpace(c.PostForm("location")),
		Organizer:        strings.TrimSpace(c.PostForm("organizer")),
		OrganizerID:      user.ID,
		RegistrationLink: strings.TrimSpace(c.PostForm("registration_link")),
		ImageURL:         imageURL,
	}

	if err := db.DB.Create(&event).Error; err != nil {
		RespondError(c, http.StatusInternalServerError, "Failed to create event")
		return
	}

	utils.GetCache().Delete(eventListCacheKey)

	c.JSON(http.StatusCreated, gin.H{"event": event})
}
