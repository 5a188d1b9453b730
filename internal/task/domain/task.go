package domain

import "time"

// Status is a task's display state, derived from the completion flag and
// the deadline. The stored column is a cache of ResolveStatus, refreshed on
// every write and recomputed on every read.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusMissed    Status = "missed"
)

// Task represents a to-do item owned by exactly one user
type Task struct {
	TaskID      string    `json:"task_id" gorm:"column:task_id;primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description *string   `json:"description" gorm:"size:1000"`
	Deadline    time.Time `json:"deadline" gorm:"not null"`
	Completed   bool      `json:"completed" gorm:"not null;default:false"`
	Status      Status    `json:"status" gorm:"size:10;not null;check:chk_tasks_status,status IN ('upcoming','completed','missed')"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}

// ResolveStatus derives the display status. Completion takes precedence
// over an elapsed deadline.
func ResolveStatus(completed bool, deadline, now time.Time) Status {
	if completed {
		return StatusCompleted
	}
	if deadline.Before(now) {
		return StatusMissed
	}
	return StatusUpcoming
}

// Resolve refreshes the cached status against the given clock reading.
func (t *Task) Resolve(now time.Time) {
	t.Status = ResolveStatus(t.Completed, t.Deadline, now)
}
