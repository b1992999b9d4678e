package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// The tasks and task_categories tables deliberately carry no FOREIGN KEY
// clauses: rows referencing absent priorities, statuses, users or
// categories are accepted and resolved to null names on read.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT,
    created_date TEXT,
    due_date TEXT,
    estimated_time TEXT,
    fk_priority INTEGER,
    fk_status INTEGER,
    fk_user INTEGER
);

CREATE TABLE IF NOT EXISTS categories (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT
);

CREATE TABLE IF NOT EXISTS priorities (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS statuses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS task_categories (
    fk_task INTEGER NOT NULL,
    fk_category INTEGER NOT NULL
);
`

// ApplySchema creates any missing tables. There is no migration mechanism:
// the schema is fixed and idempotent.
func ApplySchema(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
