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
	"gorm.io/gorm"
)

const projectListCacheKey = "projects:list"

type ProjectHandler struct{}

func NewProjectHandler() *ProjectHandler {
	return &ProjectHandler{}
}

// List returns all projects, newest first, with members preloaded.
// The listing is cached briefly and invalidated on writes.
func (h *ProjectHandler) List(c *gin.Context) {
	if cached := utils.GetCache().Get(projectListCacheKey); cached != nil {
		if projects, okCast := cached.([]models.Project); okCast {
			c.JSON(http.StatusOK, gin.H{"projects": projects})
			return
		}
	}

	var projects []models.Project
	if err := db.DB.Preload("Owner").Preload("Members.User").
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		RespondError(c, http.StatusInternalServerError, "Failed to load projects")
		return
	}

	utils.GetCache().Set(projectListCacheKey, projects, 1*time.Minute)

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// Create inserts a project, its owner membership and the optional private
// repo link in one transaction. Accepts multipart form data so an image can
// ride along.
func (h *ProjectHandler) Create(c *gin.Context) {
	user := MustUser(c)

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		RespondError(c, http.StatusBadRequest, "Title is required")
		return
	}

	imageURL := strings.TrimSpace(c.PostForm("image_url"))
	if header, err := c.FormFile("image"); err == nil {
		if storage := services.GetStorage(); storage != nil {
			if url, err := storage.UploadImage(c.Request.Context(), services.BucketProjectImages, header); err == nil {
				imageURL = url
			}
			// Upload failure falls back to the provided image_url
		}
	}

	project := models.Project{
		Title:          title,
		Description:    c.PostForm("description"),
		Tags:           utils.SplitTagList(c.PostForm("tags")),
		RequiredSkills: utils.SplitTagList(c.PostForm("required_skills")),
		LookingFor:     utils.SanitizeText(c.PostForm("looking_for")),
		ImageURL:       imageURL,
		Status:         "idea",
		OwnerID:        user.ID,
	}

	repoLink := strings.TrimSpace(c.PostForm("repo_link"))

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		member := models.ProjectMember{
			ProjectID: project.ID,
			UserID:    user.ID,
			Role:      "owner",
			IsOwner:   true,
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		if repoLink != "" {
			private := models.ProjectPrivateData{ProjectID: project.ID, RepoLink: repoLink}
			if err := tx.Create(&private).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Failed to create project")
		return
	}

	utils.GetCache().Delete(projectListCacheKey)

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// Detail returns one project with its members (batched author lookup) and,
// for members only, the private repo link.
func (h *ProjectHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var project models.Project
	if err := db.DB.Preload("Owner").Where("id = ?", id).First(&project).Error; err != nil {
		RespondError(c, http.StatusNotFound, "Project not found")
		return
	}

	var members []models.ProjectMember
	db.DB.Where("project_id = ?", project.ID).Order("created_at ASC").Find(&members)

	memberIDs := make([]uint, len(members))
	for i, m := range members {
		memberIDs[i] = m.UserID
	}
	authors := fetchAuthors(memberIDs)

	type memberView struct {
		models.ProjectMember
		Profile models.PublicUser `json:"profile"`
	}
	memberViews := make([]memberView, len(members))
	viewerIsMember := false
	viewer := CurrentUser(c)
	for i, m := range members {
		profile, found := authors[m.UserID]
		if !found {
			profile = models.PublicUser{ID: m.UserID, Name: "Unknown"}
		}
		memberViews[i] = memberView{ProjectMember: m, Profile: profile}
		if viewer != nil && m.UserID == viewer.ID {
			viewerIsMember = true
		}
	}

	resp := gin.H{
		"project":          project,
		"members":          memberViews,
		"description_html": utils.RenderMarkdown(project.Description),
	}

	if viewerIsMember {
		var private models.ProjectPrivateData
		if err := db.DB.Where("project_id = ?", project.ID).First(&private).Error; err == nil {
			resp["repo_link"] = private.RepoLink
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Join adds the caller as a member
func (h *ProjectHandler) Join(c *gin.Context) {
	user := MustUser(c)
	id := utils.StringToUint(c.Param("id"))

	var project models.Project
	if err := db.DB.First(&project, id).Error; err != nil {
		RespondError(c, http.StatusNotFound, "Project not found")
		return
	}

	var existing models.ProjectMember
	if err := db.DB.Where("project_id = ? AND user_id = ?", id, user.ID).First(&existing).Error; err == nil {
		RespondError(c, http.StatusConflict, "Already a member")
		return
	}

	member := models.ProjectMember{ProjectID: id, UserID: user.ID, Role: "member"}
	if err := db.DB.Create(&member).Error; err != nil {
		RespondError(c, http.StatusInternalServerError, "Failed to join project")
		return
	}

	utils.GetCache().Delete(projectListCacheKey)

	c.JSON(http.StatusCreated, gin.H{"member": member})
}

// Leave removes the caller's membership; the owner cannot leave
func (h *ProjectHandler) Leave(c *gin.Context) {
	user := MustUser(c)
	id := utils.StringToUint(c.Param("id"))

	var member models.ProjectMember
	if err := db.DB.Where("project_id = ? AND user_id = ?", id, user.ID).First(&member).Error; err != nil {
		RespondError(c, http.StatusNotFound, "Not a member")
		return
	}
	if member.IsOwner {
		RespondError(c, http.StatusBadRequest, "The owner cannot leave their own project")
		return
	}

	db.DB.Delete(&member)
	utils.GetCache().Delete(projectListCacheKey)
	ok(c)
}
