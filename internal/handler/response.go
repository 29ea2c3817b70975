package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"todoapp/internal/logger"
	"todoapp/internal/middleware"
	"todoapp/internal/model"
	"todoapp/internal/repository"
	"todoapp/internal/service"
)

// TaskResponse is the wire shape of a task. Timestamps are RFC3339.
type TaskResponse struct {
	ID          int64   `json:"id"`
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError is one entry of a 400 response's detail list.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func toTaskResponse(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}

// respondError maps service and repository failures onto the error contract:
// validation 400, unknown-or-foreign task 404, everything else a generic 500
// with the detail kept server-side.
func respondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"detail": []FieldError{{
			Loc:  []string{"body", verr.Field},
			Msg:  verr.Msg,
			Type: "value_error",
		}}})
	case errors.Is(err, repository.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Task not found"})
	case errors.Is(err, repository.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
	default:
		logger.Error("request failed", err,
			zap.String("request_id", c.GetString(middleware.RequestIDKey)))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "An internal server error occurred"})
	}
}

// respondBindError renders JSON binding failures. Tag violations become a
// field-level detail list; anything else (bad JSON syntax, wrong types) a
// plain detail string.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Loc:  []string{"body", strings.ToLower(fe.Field())},
				Msg:  bindErrorMessage(fe),
				Type: "value_error",
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{"detail": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
}

func bindErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "max":
		return "Value is too long"
	default:
		return "Invalid value"
	}
}
