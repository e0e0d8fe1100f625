package db

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ferdiebergado/jobnotes/internal/config"
)

// dialFile handles file://<path>. The file itself is created on first write;
// its directory must already exist.
func dialFile(_ context.Context, uri *url.URL, _ *config.DB) (*Conn, error) {
	path := filepath.Clean(strings.TrimPrefix(uri.String(), uri.Scheme+"://"))
	if path == "" || path == "." {
		return nil, fmt.Errorf("%w: file connection string has no path", ErrConfiguration)
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: stat data directory %s: %w", ErrConnection, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrConnection, dir)
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrConnection, path)
	}

	return &Conn{
		Driver:   DriverFile,
		FilePath: path,
	}, nil
}
