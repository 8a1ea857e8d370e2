package client

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteClient struct {
	DB *sql.DB
}

func NewSQLiteClient(path string) (*SQLiteClient, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer at a time; one pooled connection
	// serializes access and avoids SQLITE_BUSY churn
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	// Ping creates the file on first start
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteClient{DB: db}, nil
}

func (c *SQLiteClient) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
}

// HealthCheck reports whether the database file is still reachable.
func (c *SQLiteClient) HealthCheck(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// GetDB returns the connection handle for use in repositories.
func (c *SQLiteClient) GetDB() *sql.DB {
	return c.DB
}
