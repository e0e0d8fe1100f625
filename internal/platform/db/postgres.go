package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"github.com/ferdiebergado/jobnotes/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const pgxDriver = "pgx"

func dialPostgres(ctx context.Context, uri *url.URL, cfg *config.DB) (*Conn, error) {
	conn, err := sql.Open(pgxDriver, uri.String())
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %w", ErrConfiguration, err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime.Duration)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime.Duration)

	pingCtx, cancel := pingContext(ctx, cfg)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: ping postgres: %w", ErrConnection, err)
	}

	return &Conn{
		Driver: DriverPostgres,
		SQL:    conn,
		close: func(context.Context) error {
			return conn.Close()
		},
	}, nil
}
