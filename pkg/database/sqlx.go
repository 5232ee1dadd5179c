package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const _driverName = "pgx"

// ReadDB is the read-only handle used by reporting queries.
type ReadDB struct {
	*sqlx.DB
	Builder squirrel.StatementBuilderType
}

func NewReadDB(db *sqlx.DB) *ReadDB {
	return &ReadDB{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// InitReadDB opens a small database/sql pool over the pgx stdlib driver.
func InitReadDB(dsn string) (*ReadDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, _driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect read db: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	return NewReadDB(db), nil
}
