package usecase

import (
	"taskengine-backend/internal/task/domain"
	"taskengine-backend/internal/task/dto"
)

// TaskUsecase defines the interface for task business logic. Every operation
// is scoped to an owner; a task belonging to someone else is indistinguishable
// from one that does not exist.
type TaskUsecase interface {
	// CreateTask creates a task with its status resolved before persistence
	CreateTask(ownerID string, req *dto.CreateTaskRequest) (*domain.Task, error)

	// ListTasks returns the owner's tasks with statuses re-resolved against
	// the current clock
	ListTasks(ownerID string) ([]*domain.Task, error)

	// GetTask retrieves a single owned task
	GetTask(ownerID, taskID string) (*domain.Task, error)

	// UpdateTask applies only the explicitly supplied fields, then
	// re-resolves the status
	UpdateTask(ownerID, taskID string, req *dto.UpdateTaskRequest) (*domain.Task, error)

	// CompleteTask sets the completed flag; calling it again is a no-op
	CompleteTask(ownerID, taskID string) (*domain.Task, error)

	// DeleteTask removes an owned task
	DeleteTask(ownerID, taskID string) error
}
