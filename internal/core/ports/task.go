package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	GetByID(ctx context.Context, id int64) (domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (int64, error)
	UpdateStatus(ctx context.Context, id int64, statusID int64) error
	Delete(ctx context.Context, id int64) error
	ListCategories(ctx context.Context, taskID int64) ([]domain.Category, error)
	AttachCategory(ctx context.Context, taskID int64, categoryID int64) error
}

type TaskService interface {
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	GetTask(ctx context.Context, id int64) (domain.TaskDetail, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (int64, error)
	UpdateTaskStatus(ctx context.Context, id int64, statusID int64) error
	DeleteTask(ctx context.Context, id int64) error
	ListTaskCategories(ctx context.Context, taskID int64) ([]domain.Category, error)
	AttachCategory(ctx context.Context, taskID int64, categoryID int64) error
}
