package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetUserIDParam(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "user_id", "User ID")
}

func GetProjectIDParam(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "project_id", "Project ID")
}

func GetTicketIDParam(ctx *gin.Context) (uint, error) {
	return parseIDParam(ctx, "ticket_id", "Ticket ID")
}

func parseIDParam(ctx *gin.Context, name string, label string) (uint, error) {
	idStr := ctx.Param(name)

	if idStr == "" {
		return 0, errors.New(label + " not found")
	}

	id, err := strconv.ParseUint(idStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid " + label)
	}

	return uint(id), nil
}
