package usecase

import (
	"errors"
	"time"

	"taskengine-backend/internal/task/domain"
	"taskengine-backend/internal/task/dto"
	"taskengine-backend/internal/task/repository"
	"taskengine-backend/pkg/apperror"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
	now      func() time.Time
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

func (u *taskUsecase) CreateTask(ownerID string, req *dto.CreateTaskRequest) (*domain.Task, error) {
	task := &domain.Task{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Completed:   false,
	}
	task.Resolve(u.now())

	if err := u.taskRepo.Create(task); err != nil {
		return nil, apperror.NewInternal(err)
	}

	return u.reload(task.TaskID)
}

func (u *taskUsecase) ListTasks(ownerID string) ([]*domain.Task, error) {
	tasks, err := u.taskRepo.FindByUserID(ownerID)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	// A task fetched yesterday as upcoming may legitimately read as missed
	// today, so every listing re-resolves against the current clock.
	now := u.now()
	for _, task := range tasks {
		task.Resolve(now)
	}

	return tasks, nil
}

func (u *taskUsecase) GetTask(ownerID, taskID string) (*domain.Task, error) {
	task, err := u.findOwned(ownerID, taskID)
	if err != nil {
		return nil, err
	}
	task.Resolve(u.now())
	return task, nil
}

func (u *taskUsecase) UpdateTask(ownerID, taskID string, req *dto.UpdateTaskRequest) (*domain.Task, error) {
	task, err := u.findOwned(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Deadline != nil {
		task.Deadline = *req.Deadline
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	task.Resolve(u.now())

	if err := u.taskRepo.Update(task); err != nil {
		return nil, apperror.NewInternal(err)
	}

	return u.reload(task.TaskID)
}

func (u *taskUsecase) CompleteTask(ownerID, taskID string) (*domain.Task, error) {
	task, err := u.findOwned(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	task.Completed = true
	task.Resolve(u.now())

	if err := u.taskRepo.Update(task); err != nil {
		return nil, apperror.NewInternal(err)
	}

	return u.reload(task.TaskID)
}

func (u *taskUsecase) DeleteTask(ownerID, taskID string) error {
	task, err := u.findOwned(ownerID, taskID)
	if err != nil {
		return err
	}
	if err := u.taskRepo.Delete(task.TaskID); err != nil {
		return apperror.NewInternal(err)
	}
	return nil
}

// findOwned fetches a task and enforces ownership. Nonexistence and
// ownership mismatch produce the same NotFound.
func (u *taskUsecase) findOwned(ownerID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if task == nil || task.UserID != ownerID {
		return nil, apperror.NewNotFound("task not found")
	}
	return task, nil
}

// reload re-reads a task after a write so the caller is echoed the
// committed row, with the status freshened once more.
func (u *taskUsecase) reload(taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if task == nil {
		return nil, apperror.NewInternal(errors.New("task missing after write"))
	}
	task.Resolve(u.now())
	return task, nil
}
