package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "taskengine-backend/internal/auth/delivery"
	"taskengine-backend/internal/task/domain"
	"taskengine-backend/internal/task/dto"
	"taskengine-backend/internal/task/usecase"
	"taskengine-backend/pkg/response"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// CreateTask creates a new task for the authenticated user
// POST /v1/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	ownerID := c.GetString(authDelivery.ContextUserIDKey)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	task, err := h.taskUsecase.CreateTask(ownerID, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "task created successfully", task)
}

// ListTasks returns all tasks for the authenticated user
// GET /v1/tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	ownerID := c.GetString(authDelivery.ContextUserIDKey)

	tasks, err := h.taskUsecase.ListTasks(ownerID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	// Return empty array instead of null
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	response.Success(c, http.StatusOK, "tasks retrieved successfully", tasks)
}

// GetTask returns a single task
// GET /v1/tasks/:id
func (h *TaskHandler) GetTask(c *gin.Context) {
	ownerID := c.GetString(authDelivery.ContextUserIDKey)
	taskID := c.Param("id")

	task, err := h.taskUsecase.GetTask(ownerID, taskID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "task retrieved successfully", task)
}

// UpdateTask applies a partial update to a task
// PUT /v1/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	ownerID := c.GetString(authDelivery.ContextUserIDKey)
	taskID := c.Param("id")

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	task, err := h.taskUsecase.UpdateTask(ownerID, taskID, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "task updated successfully", task)
}

// CompleteTask marks a task as completed
// PATCH /v1/tasks/:id/complete
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	ownerID := c.GetString(authDelivery.ContextUserIDKey)
	taskID := c.Param("id")

	task, err := h.taskUsecase.CompleteTask(ownerID, taskID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "task marked as completed", task)
}

// DeleteTask deletes a task
// DELETE /v1/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	ownerID := c.GetString(authDelivery.ContextUserIDKey)
	taskID := c.Param("id")

	if err := h.taskUsecase.DeleteTask(ownerID, taskID); err != nil {
		response.FromError(c, err)
		return
	}

	response.NoContent(c, "task deleted successfully")
}
