package dto

import "time"

type CreateTaskRequest struct {
	Title       string    `json:"title" binding:"required,min=1,max=255"`
	Description *string   `json:"description" binding:"omitempty,max=1000"`
	Deadline    time.Time `json:"deadline" binding:"required"`
}

// UpdateTaskRequest supports partial updates: only non-nil fields are applied.
type UpdateTaskRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=1000"`
	Deadline    *time.Time `json:"deadline"`
	Completed   *bool      `json:"completed"`
}
