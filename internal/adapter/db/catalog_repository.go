package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type CatalogRepository struct {
	db *sqlx.DB
}

type categoryRow struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
}

type namedRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

var _ ports.CatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var rows []categoryRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, name, description FROM categories ORDER BY id;`); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryRowToDomainCategory(row))
	}

	return categories, nil
}

func (r *CatalogRepository) ListPriorities(ctx context.Context) ([]domain.Priority, error) {
	var rows []namedRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, name FROM priorities ORDER BY id;`); err != nil {
		return nil, err
	}

	priorities := make([]domain.Priority, 0, len(rows))
	for _, row := range rows {
		priorities = append(priorities, domain.Priority{ID: row.ID, Name: row.Name})
	}

	return priorities, nil
}

func (r *CatalogRepository) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	var rows []namedRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, name FROM statuses ORDER BY id;`); err != nil {
		return nil, err
	}

	statuses := make([]domain.Status, 0, len(rows))
	for _, row := range rows {
		statuses = append(statuses, domain.Status{ID: row.ID, Name: row.Name})
	}

	return statuses, nil
}

func (r *CatalogRepository) FindPriorityName(ctx context.Context, id int64) (string, error) {
	return r.findName(ctx, `SELECT name FROM priorities WHERE id = ?;`, id, domain.ErrPriorityNotFound)
}

func (r *CatalogRepository) FindStatusName(ctx context.Context, id int64) (string, error) {
	return r.findName(ctx, `SELECT name FROM statuses WHERE id = ?;`, id, domain.ErrStatusNotFound)
}

func (r *CatalogRepository) findName(ctx context.Context, query string, id int64, notFound error) (string, error) {
	var name string
	err := r.db.GetContext(ctx, &name, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", notFound
		}
		return "", err
	}
	return name, nil
}

func mapCategoryRowToDomainCategory(row categoryRow) domain.Category {
	category := domain.Category{
		ID:   row.ID,
		Name: row.Name,
	}

	if row.Description.Valid {
		value := row.Description.String
		category.Description = &value
	}

	return category
}
