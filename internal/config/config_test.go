package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ferdiebergado/jobnotes/internal/config"
	"github.com/google/go-cmp/cmp"
)

const testConfig = `{
	// server settings
	"server": {
		"port": 8080,
		"read_timeout": "5s",
		"shutdown_timeout": "10s",
	},
	"db": {
		"max_open_conns": 10,
		"ping_timeout": "2s",
	},
	"jwt": {
		"issuer": "jobnotes",
		"ttl": "30m",
	},
}
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "")
	t.Setenv("KEY", "secret")
	t.Setenv("ACCESS_CONDITION_TEXT", "open sesame")

	cfg, err := config.Load(writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("config.Load() = %v, want: nil", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("cfg.Server.Port = %d, want: %d", cfg.Server.Port, 9090)
	}

	if cfg.Server.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("cfg.Server.ReadTimeout = %v, want: %v", cfg.Server.ReadTimeout, 5*time.Second)
	}

	wantDB := &config.DB{
		URI:          "mongodb://localhost:27017",
		Name:         "recent_job",
		MaxOpenConns: 10,
	}
	wantDB.PingTimeout.Duration = 2 * time.Second
	if diff := cmp.Diff(wantDB, cfg.DB); diff != "" {
		t.Errorf("cfg.DB mismatch (-want +got):\n%s", diff)
	}

	if cfg.App.Key != "secret" {
		t.Errorf("cfg.App.Key = %q, want: %q", cfg.App.Key, "secret")
	}

	if cfg.Access.ConditionText != "open sesame" {
		t.Errorf("cfg.Access.ConditionText = %q, want: %q", cfg.Access.ConditionText, "open sesame")
	}

	if cfg.JWT.TTL.Duration != 30*time.Minute {
		t.Errorf("cfg.JWT.TTL = %v, want: %v", cfg.JWT.TTL, 30*time.Minute)
	}
}

func TestLoad_GeneratesKey(t *testing.T) {
	t.Setenv("KEY", "")

	cfg, err := config.Load(writeConfig(t, `{}`))
	if err != nil {
		t.Fatalf("config.Load() = %v, want: nil", err)
	}

	if cfg.App.Key == "" {
		t.Error("cfg.App.Key is empty, want: generated key")
	}

	if cfg.Server.MaxBodyBytes == 0 {
		t.Error("cfg.Server.MaxBodyBytes is zero, want: default")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name, path string
	}{
		{"Missing file", filepath.Join(t.TempDir(), "missing.json")},
		{"Malformed file", writeConfig(t, `{"server": {`)},
		{"Wrong type", writeConfig(t, `{"server": {"port": "eighty"}}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := config.Load(tt.path); err == nil {
				t.Errorf("config.Load(%q) = nil, want: error", tt.path)
			}
		})
	}
}

func TestApp_IsProduction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want bool
	}{
		{"production", true},
		{"development", false},
		{"", false},
		{"Production", false},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()

			app := &config.App{Env: tt.env}
			if got := app.IsProduction(); got != tt.want {
				t.Errorf("app.IsProduction() = %t, want: %t", got, tt.want)
			}
		})
	}
}
