package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"taskboard/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", conf.SQLitePath)

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; one pooled connection serializes
	// statements instead of surfacing SQLITE_BUSY to handlers.
	db.SetMaxOpenConns(1)

	if err := ApplySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
