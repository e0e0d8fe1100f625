// Package db establishes the single datastore connection shared by the note stores.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/ferdiebergado/jobnotes/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrConfiguration = errors.New("db: configuration error")
	ErrConnection    = errors.New("db: connection error")
)

// Driver names the datastore behind a connection string.
type Driver string

const (
	DriverMongo    Driver = "mongodb"
	DriverPostgres Driver = "postgres"
	DriverDynamo   Driver = "dynamodb"
	DriverFile     Driver = "file"
)

// Executor is satisfied by *sql.DB and *sql.Tx.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Conn is an established datastore handle. Exactly one of the handle fields
// is set, matching Driver.
type Conn struct {
	Driver Driver

	Mongo    *mongo.Database
	SQL      *sql.DB
	Dynamo   *dynamodb.Client
	Table    string
	FilePath string

	close func(ctx context.Context) error
}

// Close releases the driver handle.
func (c *Conn) Close(ctx context.Context) error {
	if c.close == nil {
		return nil
	}
	if err := c.close(ctx); err != nil {
		return fmt.Errorf("close %s connection: %w", c.Driver, err)
	}
	return nil
}

type dialFunc func(ctx context.Context, uri *url.URL, cfg *config.DB) (*Conn, error)

// Connector dials the configured datastore once and hands out the same Conn afterwards.
type Connector struct {
	cfg     *config.DB
	dialers map[string]dialFunc

	mu   sync.Mutex
	conn *Conn
}

func NewConnector(cfg *config.DB) *Connector {
	return &Connector{
		cfg: cfg,
		dialers: map[string]dialFunc{
			"mongodb":     dialMongo,
			"mongodb+srv": dialMongo,
			"postgres":    dialPostgres,
			"postgresql":  dialPostgres,
			"dynamodb":    dialDynamo,
			"file":        dialFile,
		},
	}
}

// Connect returns the memoized connection, dialing on first use.
// A failed attempt is not remembered; the next call dials again.
func (c *Connector) Connect(ctx context.Context) (*Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return c.conn, nil
	}

	rawURI := strings.TrimSpace(c.cfg.URI)
	if rawURI == "" {
		return nil, fmt.Errorf("%w: MONGODB_URI is not set", ErrConfiguration)
	}

	uri, err := url.Parse(rawURI)
	if err != nil {
		return nil, fmt.Errorf("%w: parse connection string: %w", ErrConfiguration, err)
	}

	dial, ok := c.dialers[strings.ToLower(uri.Scheme)]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrConfiguration, uri.Scheme)
	}

	slog.Info("Connecting to the database...", "scheme", uri.Scheme)
	conn, err := dial(ctx, uri, c.cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("Connected to the database.", "driver", conn.Driver)

	c.conn = conn
	return conn, nil
}

// Close closes the memoized connection, if any.
func (c *Connector) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close(ctx)
	c.conn = nil
	return err
}

func pingContext(ctx context.Context, cfg *config.DB) (context.Context, context.CancelFunc) {
	if cfg.PingTimeout.Duration <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, cfg.PingTimeout.Duration)
}
