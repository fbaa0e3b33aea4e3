package handlers

import (
	"net/http"
	"strings"

	"campconnect/internal/db"
	"campconnect/internal/models"
	"campconnect/internal/services"
	"campconnect/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// Show returns a user's public profile
func (h *ProfileHandler) Show(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		RespondError(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type profileUpdateRequest struct {
	Name       string `json:"name"`
	College    string `json:"college"`
	Year       string `json:"year"`
	Department string `json:"department"`
	Bio        string `json:"bio"`
}

// Update edits the caller's own profile fields
func (h *ProfileHandler) Update(c *gin.Context) {
	user := MustUser(c)

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		RespondError(c, http.StatusBadRequest, "Name cannot be empty")
		return
	}

	updates := map[string]interface{}{
		"name":       strings.TrimSpace(req.Name),
		"college":    strings.TrimSpace(req.College),
		"year":       strings.TrimSpace(req.Year),
		"department": strings.TrimSpace(req.Department),
		"bio":        utils.SanitizeText(req.Bio),
	}
	if err := db.DB.Model(user).Updates(updates).Error; err != nil {
		RespondError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	db.DB.First(user, user.ID)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type tagRequest struct {
	Value string `json:"value"`
}

// AddSkill appends one skill to the caller's tag profile
func (h *ProfileHandler) AddSkill(c *gin.Context) {
	h.addTag(c, "skills")
}

// RemoveSkill drops one skill from the caller's tag profile
func (h *ProfileHandler) RemoveSkill(c *gin.Context) {
	h.removeTag(c, "skills")
}

// AddInterest appends one interest to the caller's tag profile
func (h *ProfileHandler) AddInterest(c *gin.Context) {
	h.addTag(c, "interests")
}

// RemoveInterest drops one interest from the caller's tag profile
func (h *ProfileHandler) RemoveInterest(c *gin.Context) {
	h.removeTag(c, "interests")
}

func (h *ProfileHandler) addTag(c *gin.Context, column string) {
	user := MustUser(c)

	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Value) == "" {
		RespondError(c, http.StatusBadRequest, "Value cannot be empty")
		return
	}
	value := strings.TrimSpace(req.Value)

	current := user.Skills
	if column == "interests" {
		current = user.Interests
	}
	for _, existing := range current {
		if strings.EqualFold(existing, value) {
			c.JSON(http.StatusOK, gin.H{"user": user})
			return
		}
	}

	updated := append(append(pq.StringArray{}, current...), value)
	if err := db.DB.Model(user).Update(column, updated).Error; err != nil {
		RespondError(c, http.StatusInternalServerError, "Failed to update "+column)
		return
	}

	db.DB.First(user, user.ID)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *ProfileHandler) removeTag(c *gin.Context, column string) {
	user := MustUser(c)

	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	current := user.Skills
	if column == "interests" {
		current = user.Interests
	}
	updated := pq.StringArray{}
	for _, existing := range current {
		if existing != req.Value {
			updated = append(updated, existing)
		}
	}

	if err := db.DB.Model(user).Update(column, updated).Error; err != nil {
		RespondError(c, http.StatusInternalServerError, "Failed to update "+column)
		return
	}

	db.DB.First(user, user.ID)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UploadAvatar stores a new avatar image and saves its public URL
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	user := MustUser(c)

	storage := services.GetStorage()
	if storage == nil {
		RespondError(c, http.StatusServiceUnavailable, "Image uploads are not configured")
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "Missing image file")
		return
	}

	url, err := storage.UploadImage(c.Request.Context(), services.BucketAvatars, header)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	if err := db.DB.Model(user).Update("avatar_url", url).Error; err != nil {
		RespondError(c, http.StatusInternalServerError, "Failed to save avatar")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
