package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/jobnotes/internal/access"
	"github.com/ferdiebergado/jobnotes/internal/config"
	"github.com/ferdiebergado/jobnotes/internal/note"
	"github.com/ferdiebergado/jobnotes/internal/page"
	"github.com/ferdiebergado/jobnotes/internal/pkg/logging"
	"github.com/ferdiebergado/jobnotes/internal/platform/db"
	"github.com/ferdiebergado/jobnotes/internal/platform/paramstore"
	"github.com/ferdiebergado/jobnotes/internal/provider"
)

// Options locates the files read at startup.
type Options struct {
	ConfigFile string
	EnvFile    string
}

func DefaultOptions() Options {
	return Options{
		ConfigFile: "config.json",
		EnvFile:    ".env",
	}
}

// Setup loads the configuration, connects to the note store and builds the
// App. The returned cleanup closes the store connection.
func Setup(ctx context.Context, opts Options) (*App, func(context.Context) error, error) {
	if os.Getenv("ENV") != "production" {
		if err := loadEnvFile(opts.EnvFile); err != nil {
			return nil, nil, err
		}
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, nil, err
	}

	logging.SetupLogger(cfg.App.IsProduction(), cfg.App.LogLevel, os.Stdout)

	p, err := provider.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("new provider: %w", err)
	}

	connector := db.NewConnector(cfg.DB)
	conn, err := connector.Connect(ctx)
	if err != nil {
		return nil, nil, err
	}

	a, err := build(ctx, p, conn)
	if err != nil {
		if closeErr := connector.Close(ctx); closeErr != nil {
			slog.Error("close datastore connection", "reason", closeErr)
		}
		return nil, nil, err
	}

	return a, connector.Close, nil
}

func build(ctx context.Context, p *provider.Provider, conn *db.Conn) (*App, error) {
	repo, err := note.NewRepository(conn)
	if err != nil {
		return nil, fmt.Errorf("new note repository: %w", err)
	}

	secret, err := resolveSecret(ctx, p.Cfg.Access)
	if err != nil {
		return nil, err
	}

	gate, err := access.NewService(secret, p.Hasher, p.Signer, p.Cfg.JWT.TTL.Duration)
	if err != nil {
		return nil, fmt.Errorf("new access gate: %w", err)
	}

	pg, err := page.New(gate.Enabled())
	if err != nil {
		return nil, err
	}

	return New(p, repo, gate, pg, DefaultMiddlewares(p.Cfg.Server)), nil
}

func resolveSecret(ctx context.Context, cfg *config.Access) (string, error) {
	var params paramstore.Getter
	if cfg.ConditionText == "" && cfg.ConditionParam != "" {
		client, err := paramstore.NewFromEnv(ctx)
		if err != nil {
			return "", err
		}
		params = client
	}
	return access.ResolveSecret(ctx, cfg, params)
}

// loadEnvFile loads the env file when it exists.
func loadEnvFile(name string) error {
	if name == "" {
		return nil
	}
	if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
		slog.Debug("No env file found.", "file", name)
		return nil
	}
	if err := env.Load(name); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// Run serves the application until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, opts Options) error {
	slog.Info("Initializing...")

	a, cleanup, err := Setup(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := cleanup(context.Background()); err != nil {
			slog.Error("close datastore connection", "reason", err)
		}
	}()

	if err := a.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return a.Shutdown()
}
