package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const selectTasksQuery = `
SELECT id, title, description, created_date, due_date, estimated_time, fk_priority, fk_status, fk_user
FROM tasks
`

const listTaskCategoriesQuery = `
SELECT c.id, c.name, c.description
FROM categories c
JOIN task_categories tc ON tc.fk_category = c.id
WHERE tc.fk_task = ?
ORDER BY c.id;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID            int64          `db:"id"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	CreatedDate   sql.NullString `db:"created_date"`
	DueDate       sql.NullString `db:"due_date"`
	EstimatedTime sql.NullString `db:"estimated_time"`
	PriorityID    sql.NullInt64  `db:"fk_priority"`
	StatusID      sql.NullInt64  `db:"fk_status"`
	UserID        sql.NullInt64  `db:"fk_user"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query := selectTasksQuery
	var args []interface{}

	switch {
	case filter.StatusID != nil:
		query += `WHERE fk_status = ? `
		args = append(args, *filter.StatusID)
	case filter.UserID != nil:
		query += `WHERE fk_user = ? `
		args = append(args, *filter.UserID)
	}
	query += `ORDER BY id;`

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, selectTasksQuery+`WHERE id = ?;`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (title, description, created_date, due_date, estimated_time, fk_priority, fk_status, fk_user)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		input.Title,
		input.Description,
		input.CreatedDate,
		input.DueDate,
		input.EstimatedTime,
		input.PriorityID,
		input.StatusID,
		input.UserID,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id int64, statusID int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET fk_status = ? WHERE id = ?;`, statusID, id)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?;`, id)
	return err
}

func (r *TaskRepository) ListCategories(ctx context.Context, taskID int64) ([]domain.Category, error) {
	var rows []categoryRow
	if err := r.db.SelectContext(ctx, &rows, listTaskCategoriesQuery, taskID); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryRowToDomainCategory(row))
	}

	return categories, nil
}

func (r *TaskRepository) AttachCategory(ctx context.Context, taskID int64, categoryID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO task_categories (fk_task, fk_category) VALUES (?, ?);`, taskID, categoryID)
	return err
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:    row.ID,
		Title: row.Title,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.CreatedDate.Valid {
		value := row.CreatedDate.String
		task.CreatedDate = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.String
		task.DueDate = &value
	}

	if row.EstimatedTime.Valid {
		value := row.EstimatedTime.String
		task.EstimatedTime = &value
	}

	if row.PriorityID.Valid {
		value := row.PriorityID.Int64
		task.PriorityID = &value
	}

	if row.StatusID.Valid {
		value := row.StatusID.Int64
		task.StatusID = &value
	}

	if row.UserID.Valid {
		value := row.UserID.Int64
		task.UserID = &value
	}

	return task
}
