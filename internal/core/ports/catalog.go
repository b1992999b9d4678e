package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListPriorities(ctx context.Context) ([]domain.Priority, error)
	ListStatuses(ctx context.Context) ([]domain.Status, error)
	FindPriorityName(ctx context.Context, id int64) (string, error)
	FindStatusName(ctx context.Context, id int64) (string, error)
}

type CatalogService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListPriorities(ctx context.Context) ([]domain.Priority, error)
	ListStatuses(ctx context.Context) ([]domain.Status, error)
}
