package db

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	db.SetMaxOpenConns(1)
	require.NoError(t, ApplySchema(db))

	return db
}

func TestApplySchema_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	// A second run must not fail or wipe data.
	_, err := db.Exec(`INSERT INTO statuses (name) VALUES ('todo');`)
	require.NoError(t, err)
	require.NoError(t, ApplySchema(db))

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM statuses;`))
	require.Equal(t, 1, count)
}
