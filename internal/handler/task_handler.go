package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todoapp/internal/middleware"
	"todoapp/internal/service"
)

type TaskHandler struct {
	service *service.TaskService
}

func NewTaskHandler(service *service.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// TaskCreateRequest is the POST body. Length limits are re-checked by the
// service after sanitization; the binding tags catch the cheap cases early.
type TaskCreateRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

// TaskUpdateRequest is the PUT body. Absent fields are left untouched.
type TaskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ownerID returns the verified subject. The owner guard has already proven
// it equal to the user_id path segment.
func ownerID(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}

// taskID parses the id path segment. A non-numeric id cannot name an
// existing task, so it reports 404 rather than 400.
func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Task not found"})
		return 0, false
	}
	return id, true
}

// List handles GET /api/:user_id/tasks
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.service.List(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := TaskListResponse{Tasks: make([]TaskResponse, 0, len(tasks))}
	for i := range tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(&tasks[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/:user_id/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	task, err := h.service.Create(c.Request.Context(), ownerID(c), req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Get handles GET /api/:user_id/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.service.Get(c.Request.Context(), ownerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

// Update handles PUT /api/:user_id/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	task, err := h.service.Update(c.Request.Context(), ownerID(c), id, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

// ToggleComplete handles PATCH /api/:user_id/tasks/:id/complete
func (h *TaskHandler) ToggleComplete(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.service.ToggleCompletion(c.Request.Context(), ownerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /api/:user_id/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), ownerID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
}
