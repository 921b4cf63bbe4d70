package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/bugstack-dev/bugstack/db"
	"github.com/bugstack-dev/bugstack/internal/models"
	"github.com/bugstack-dev/bugstack/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateProjectRequest struct {
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description" binding:"required"`
	CreatorID        uint   `json:"creatorsId" binding:"required"`
	CreatorFirstName string `json:"creatorsFirstName"`
	CreatorLastName  string `json:"creatorsLastName"`
}

type AddMemberRequest struct {
	ProjectID   uint   `json:"projectId" binding:"required"`
	ProjectName string `json:"projectName"`
	UserID      uint   `json:"userId" binding:"required"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

type ProjectListItem struct {
	ID               uint   `json:"_id"`
	ProjectName      string `json:"projectName"`
	CreatorID        uint   `json:"creatorsId"`
	CreatorFirstName string `json:"creatorsFirstName"`
	CreatorLastName  string `json:"creatorsLastName"`
}

type ProjectDataResponse struct {
	ProjectName        string `json:"projectName"`
	ProjectDescription string `json:"projectDescription"`
	CreatorFirstName   string `json:"creatorsFirstName"`
	CreatorLastName    string `json:"creatorsLastName"`
}

type ProjectMemberResponse struct {
	UserID    uint   `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CreateProject creates the project and its creator's membership in a
// single transaction, so a project can never exist with zero members.
func CreateProject(ctx *gin.Context) {
	var body CreateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var creator models.User

	if err := db.DB.First(&creator, body.CreatorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Creator not found"})
		} else {
			log.Printf("Database error when fetching creator: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	// Creator names come from the users table, not the request body.
	project := models.Project{
		Name:             body.Name,
		Description:      body.Description,
		CreatorID:        creator.ID,
		CreatorFirstName: creator.FirstName,
		CreatorLastName:  creator.LastName,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		membership := models.ProjectMembership{
			UserID:      creator.ID,
			ProjectID:   project.ID,
			ProjectName: project.Name,
			FirstName:   creator.FirstName,
			LastName:    creator.LastName,
		}

		return tx.Create(&membership).Error
	})

	if err != nil {
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"projectId": project.ID})
}

// AddUsers adds members to projects in bulk. Inserts are idempotent on
// (projectId, userId), so retried calls never duplicate membership rows.
func AddUsers(ctx *gin.Context) {
	var body []AddMemberRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if len(body) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No members provided"})
		return
	}

	added := 0

	for _, member := range body {
		var project models.Project

		if err := db.DB.First(&project, member.ProjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Project not found"})
			} else {
				log.Printf("Database error when fetching project: %v", err)
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		var user models.User

		if err := db.DB.First(&user, member.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
			} else {
				log.Printf("Database error when fetching user: %v", err)
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		membership := models.ProjectMembership{
			UserID:      user.ID,
			ProjectID:   project.ID,
			ProjectName: project.Name,
			FirstName:   user.FirstName,
			LastName:    user.LastName,
		}

		result := db.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "project_id"}},
			DoNothing: true,
		}).Create(&membership)

		if result.Error != nil {
			log.Printf("Failed to add member: %v", result.Error)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add members"})
			return
		}

		added += int(result.RowsAffected)
	}

	ctx.JSON(http.StatusOK, gin.H{"added": added})
}

// ListProjects returns the projects in which the user is a member,
// creator memberships included.
func ListProjects(ctx *gin.Context) {
	userID, err := utils.GetUserIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var projects []models.Project

	if err := db.DB.
		Joins("JOIN project_memberships ON project_memberships.project_id = projects.id").
		Where("project_memberships.user_id = ? AND project_memberships.deleted_at IS NULL", userID).
		Find(&projects).Error; err != nil {
		log.Printf("Failed to list projects for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]ProjectListItem, 0, len(projects))

	for _, project := range projects {
		response = append(response, ProjectListItem{
			ID:               project.ID,
			ProjectName:      project.Name,
			CreatorID:        project.CreatorID,
			CreatorFirstName: project.CreatorFirstName,
			CreatorLastName:  project.CreatorLastName,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func GetProjectData(ctx *gin.Context) {
	projectID, err := utils.GetProjectIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project models.Project

	if err := db.DB.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to fetch project %d: %v", projectID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	ctx.JSON(http.StatusOK, ProjectDataResponse{
		ProjectName:        project.Name,
		ProjectDescription: project.Description,
		CreatorFirstName:   project.CreatorFirstName,
		CreatorLastName:    project.CreatorLastName,
	})
}

func ListProjectUsers(ctx *gin.Context) {
	projectID, err := utils.GetProjectIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project models.Project

	if err := db.DB.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to fetch project %d: %v", projectID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	var memberships []models.ProjectMembership

	if err := db.DB.Where("project_id = ?", projectID).Find(&memberships).Error; err != nil {
		log.Printf("Failed to list members for project %d: %v", projectID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve members"})
		return
	}

	response := make([]ProjectMemberResponse, 0, len(memberships))

	for _, membership := range memberships {
		response = append(response, ProjectMemberResponse{
			UserID:    membership.UserID,
			FirstName: membership.FirstName,
			LastName:  membership.LastName,
		})
	}

	ctx.JSON(http.StatusOK, response)
}
