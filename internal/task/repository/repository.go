package repository

import "taskengine-backend/internal/task/domain"

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID, returning (nil, nil) when absent
	FindByID(id string) (*domain.Task, error)

	// FindByUserID finds all tasks owned by a user
	FindByUserID(userID string) ([]*domain.Task, error)

	// Update persists an existing task as a single-row write
	Update(task *domain.Task) error

	// Delete deletes a task by ID
	Delete(id string) error
}
