package service

import (
	"context"
	"errors"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type TaskService struct {
	taskRepository    ports.TaskRepository
	catalogRepository ports.CatalogRepository
	userRepository    ports.UserRepository
}

func NewTaskService(
	taskRepository ports.TaskRepository,
	catalogRepository ports.CatalogRepository,
	userRepository ports.UserRepository,
) *TaskService {
	return &TaskService{
		taskRepository:    taskRepository,
		catalogRepository: catalogRepository,
		userRepository:    userRepository,
	}
}

func (s *TaskService) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.taskRepository.List(ctx, filter)
}

// GetTask resolves the names behind the task's foreign keys with point
// lookups. A null or dangling key yields a nil name, never an error.
func (s *TaskService) GetTask(ctx context.Context, id int64) (domain.TaskDetail, error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return domain.TaskDetail{}, err
	}

	detail := domain.TaskDetail{Task: task}

	if task.PriorityID != nil {
		name, err := s.catalogRepository.FindPriorityName(ctx, *task.PriorityID)
		if err == nil {
			detail.PriorityName = &name
		} else if !errors.Is(err, domain.ErrPriorityNotFound) {
			return domain.TaskDetail{}, err
		}
	}

	if task.StatusID != nil {
		name, err := s.catalogRepository.FindStatusName(ctx, *task.StatusID)
		if err == nil {
			detail.StatusName = &name
		} else if !errors.Is(err, domain.ErrStatusNotFound) {
			return domain.TaskDetail{}, err
		}
	}

	if task.UserID != nil {
		name, err := s.userRepository.FindUsername(ctx, *task.UserID)
		if err == nil {
			detail.UserName = &name
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return domain.TaskDetail{}, err
		}
	}

	return detail, nil
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (int64, error) {
	return s.taskRepository.Create(ctx, input)
}

func (s *TaskService) UpdateTaskStatus(ctx context.Context, id int64, statusID int64) error {
	if _, err := s.taskRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.taskRepository.UpdateStatus(ctx, id, statusID)
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	if _, err := s.taskRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.taskRepository.Delete(ctx, id)
}

func (s *TaskService) ListTaskCategories(ctx context.Context, taskID int64) ([]domain.Category, error) {
	return s.taskRepository.ListCategories(ctx, taskID)
}

// AttachCategory inserts the join row as-is. Neither side is checked for
// existence and duplicates are allowed.
func (s *TaskService) AttachCategory(ctx context.Context, taskID int64, categoryID int64) error {
	return s.taskRepository.AttachCategory(ctx, taskID, categoryID)
}

var _ ports.TaskService = (*TaskService)(nil)
