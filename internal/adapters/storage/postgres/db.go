package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/aws/aws-xray-sdk-go/xray"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schema string

// Open abre un pool a Postgres usando pgx (database/sql) envuelto en sqlx.
// Con traced=true las queries se registran como subsegmentos de X-Ray.
func Open(ctx context.Context, dsn string, traced bool) (*sqlx.DB, error) {
	var (
		db  *sql.DB
		err error
	)
	if traced {
		db, err = xray.SQLContext("pgx", dsn)
	} else {
		db, err = sql.Open("pgx", dsn)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	return sqlx.NewDb(db, "pgx"), nil
}

// Migrate crea tablas e índices si no existen. Es idempotente.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("postgres: migrate: %w", err)
	}
	return nil
}
