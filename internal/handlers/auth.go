package handlers

import (
	"net/http"
	"strings"

	"campconnect/internal/db"
	"campconnect/internal/models"
	"campconnect/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type registerRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	College    string `json:"college"`
	Year       string `json:"year"`
	Department string `json:"department"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// translateAuthError maps raw store errors onto the user-facing messages
// the registration form shows.
func translateAuthError(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "already exists"):
		return "Email already registered. Please sign in instead."
	case strings.Contains(msg, "rate limit"), strings.Contains(msg, "too many"):
		return "Too many attempts. Wait a few minutes and try again."
	default:
		return "Something went wrong. Please try again."
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Validation happens before any store call
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		RespondError(c, http.StatusBadRequest, "Please enter a valid email address")
		return
	}
	if len(req.Password) < 6 {
		RespondError(c, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		RespondError(c, http.StatusBadRequest, "Please enter your name")
		return
	}

	// Pre-check duplicates for a friendly message; the unique index still
	// backs this up under races.
	var existing models.User
	if err := db.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		RespondError(c, http.StatusConflict, "Email already registered. Please sign in instead.")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	user := models.User{
		Name:       name,
		Email:      email,
		Password:   hash,
		College:    strings.TrimSpace(req.College),
		Year:       strings.TrimSpace(req.Year),
		Department: strings.TrimSpace(req.Department),
	}
	if err := db.DB.Create(&user).Error; err != nil {
		RespondError(c, http.StatusConflict, translateAuthError(err))
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	ok(c)
}

// Me reports the current session state
func (h *AuthHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
