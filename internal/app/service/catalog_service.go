package service

import (
	"context"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type CatalogService struct {
	catalogRepository ports.CatalogRepository
}

func NewCatalogService(catalogRepository ports.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepository: catalogRepository}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.catalogRepository.ListCategories(ctx)
}

func (s *CatalogService) ListPriorities(ctx context.Context) ([]domain.Priority, error) {
	return s.catalogRepository.ListPriorities(ctx)
}

func (s *CatalogService) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	return s.catalogRepository.ListStatuses(ctx)
}

var _ ports.CatalogService = (*CatalogService)(nil)
