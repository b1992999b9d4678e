package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	// The password column stays out of the projection.
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, username FROM users ORDER BY id;`); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, domain.User{ID: row.ID, Username: row.Username})
	}

	return users, nil
}

// FindByCredentials matches username and password exactly as stored. The
// password is plaintext, kept for parity with the data this system
// inherited; see DESIGN.md.
func (r *UserRepository) FindByCredentials(ctx context.Context, username, password string) (domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, username FROM users WHERE username = ? AND password = ? LIMIT 1;`, username, password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return domain.User{ID: row.ID, Username: row.Username}, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users WHERE username = ?;`, username)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) FindUsername(ctx context.Context, id int64) (string, error) {
	var username string
	err := r.db.GetContext(ctx, &username, `SELECT username FROM users WHERE id = ?;`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}
	return username, nil
}

func (r *UserRepository) Create(ctx context.Context, username, password string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password) VALUES (?, ?);`, username, password)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
