package db

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ferdiebergado/jobnotes/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func dialMongo(ctx context.Context, uri *url.URL, cfg *config.DB) (*Conn, error) {
	opts := options.Client().ApplyURI(uri.String())
	if cfg.PingTimeout.Duration > 0 {
		opts.SetServerSelectionTimeout(cfg.PingTimeout.Duration)
	}
	if cfg.MaxOpenConns > 0 {
		opts.SetMaxPoolSize(uint64(cfg.MaxOpenConns))
	}
	if cfg.ConnMaxIdleTime.Duration > 0 {
		opts.SetMaxConnIdleTime(cfg.ConnMaxIdleTime.Duration)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: connect to mongodb: %w", ErrConnection, err)
	}

	pingCtx, cancel := pingContext(ctx, cfg)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: ping mongodb: %w", ErrConnection, err)
	}

	return &Conn{
		Driver: DriverMongo,
		Mongo:  client.Database(cfg.Name),
		close:  client.Disconnect,
	}, nil
}
