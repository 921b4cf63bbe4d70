package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/bugstack-dev/bugstack/db"
	"github.com/bugstack-dev/bugstack/internal/models"
	"github.com/bugstack-dev/bugstack/internal/types"
	"github.com/bugstack-dev/bugstack/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateTicketRequest struct {
	Summary     string `json:"summary" binding:"required"`
	Description string `json:"description" binding:"required"`
	ProjectID   uint   `json:"projectId" binding:"required"`
	Status      string `json:"status" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
	ReporterID  uint   `json:"reporterId" binding:"required"`
	AssigneeID  uint   `json:"assigneeId" binding:"required"`
	Created     string `json:"created"`
	DueDate     string `json:"dueDate" binding:"required"`
}

type TicketResponse struct {
	ID          uint      `json:"_id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	ProjectID   uint      `json:"projectId"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	ReporterID  uint      `json:"reporterId"`
	AssigneeID  uint      `json:"assigneeId"`
	Created     time.Time `json:"created"`
	DueDate     time.Time `json:"dueDate"`
}

func CreateTicket(ctx *gin.Context) {
	var req CreateTicketRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := types.ParseTicketStatus(req.Status)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	priority, err := types.ParseTicketPriority(req.Priority)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dueDate, err := utils.ParseDate(req.DueDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date: " + err.Error()})
		return
	}

	var project models.Project

	if err := db.DB.First(&project, req.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Database error when fetching project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var reporter models.User

	if err := db.DB.First(&reporter, req.ReporterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Reporter not found"})
		} else {
			log.Printf("Database error when fetching reporter: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var assignee models.User

	if err := db.DB.First(&assignee, req.AssigneeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Assignee not found"})
		} else {
			log.Printf("Database error when fetching assignee: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ticket := models.Ticket{
		ProjectID:   project.ID,
		Summary:     req.Summary,
		Description: req.Description,
		Status:      string(status),
		Priority:    string(priority),
		ReporterID:  reporter.ID,
		AssigneeID:  assignee.ID,
		DueDate:     dueDate,
	}

	// Creation time is server-stamped unless the client supplies one.
	if req.Created != "" {
		created, err := utils.ParseDate(req.Created)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid created date: " + err.Error()})
			return
		}
		ticket.CreatedAt = created
	}

	if err := db.DB.Create(&ticket).Error; err != nil {
		log.Printf("Failed to create ticket: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ticket"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"ticketId": ticket.ID})
}

// ListTickets returns every ticket the user reported or is assigned
// to. A ticket whose reporter and assignee are the same user still
// appears once, since the OR filter matches a single row.
func ListTickets(ctx *gin.Context) {
	userID, err := utils.GetUserIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tickets []models.Ticket

	if err := db.DB.
		Where("reporter_id = ? OR assignee_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&tickets).Error; err != nil {
		log.Printf("Failed to list tickets for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tickets"})
		return
	}

	response := make([]TicketResponse, 0, len(tickets))

	for _, ticket := range tickets {
		response = append(response, buildTicketResponse(ticket))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetTicket(ctx *gin.Context) {
	ticketID, err := utils.GetTicketIDParam(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var ticket models.Ticket

	if err := db.DB.First(&ticket, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		} else {
			log.Printf("Failed to fetch ticket %d: %v", ticketID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ticket"})
		}
		return
	}

	ctx.JSON(http.StatusOK, buildTicketResponse(ticket))
}

func buildTicketResponse(ticket models.Ticket) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID,
		Summary:     ticket.Summary,
		Description: ticket.Description,
		ProjectID:   ticket.ProjectID,
		Status:      ticket.Status,
		Priority:    ticket.Priority,
		ReporterID:  ticket.ReporterID,
		AssigneeID:  ticket.AssigneeID,
		Created:     ticket.CreatedAt,
		DueDate:     ticket.DueDate,
	}
}
