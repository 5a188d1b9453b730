package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskengine-backend/internal/task/domain"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.TaskID == "" {
		task.TaskID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("task_id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindByUserID(userID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("user_id = ?", userID).
		Order("deadline ASC, created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

func (r *gormTaskRepository) Delete(id string) error {
	return r.db.Delete(&domain.Task{}, "task_id = ?", id).Error
}
