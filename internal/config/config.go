// Package config loads the application configuration from a JSONC file and the environment.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/ferdiebergado/jobnotes/internal/pkg/env"
	"github.com/ferdiebergado/jobnotes/internal/pkg/security"
	timex "github.com/ferdiebergado/jobnotes/internal/pkg/time"
	"github.com/tailscale/hujson"
)

const (
	defaultPort         = 8888
	defaultMaxBodyBytes = 1 << 20
	defaultDBName       = "recent_job"
	defaultPingTimeout  = 5 * time.Second
	defaultKeyLength    = 32
	maskChar            = "*"
)

type App struct {
	Env      string `json:"env,omitempty" env:"ENV"`
	LogLevel string `json:"log_level,omitempty" env:"LOG_LEVEL"`
	Key      string `json:"-" env:"KEY"`
}

func (a *App) IsProduction() bool {
	return a.Env == "production"
}

func (a *App) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("env", a.Env),
		slog.String("log_level", a.LogLevel),
		slog.String("key", maskChar),
	)
}

type Server struct {
	URL               string         `json:"url,omitempty" env:"URL"`
	Port              int            `json:"port,omitempty" env:"PORT"`
	ReadTimeout       timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout      timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout       timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout   timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes      int64          `json:"max_body_bytes,omitempty"`
	CORSAllowedOrigin string         `json:"cors_allowed_origin,omitempty" env:"CORS_ALLOWED_ORIGIN"`
}

type DB struct {
	URI             string         `json:"-" env:"MONGODB_URI"`
	Name            string         `json:"name,omitempty" env:"DB_NAME"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
}

// LogValue logs the connection string scheme only, never its credentials.
func (d *DB) LogValue() slog.Value {
	scheme := ""
	if u, err := url.Parse(d.URI); err == nil {
		scheme = u.Scheme
	}
	return slog.GroupValue(
		slog.String("scheme", scheme),
		slog.String("name", d.Name),
		slog.Int("max_open_conns", d.MaxOpenConns),
		slog.Int("max_idle_conns", d.MaxIdleConns),
		slog.Duration("ping_timeout", d.PingTimeout.Duration),
	)
}

type JWT struct {
	JTILength uint32         `json:"jti_length,omitempty"`
	Issuer    string         `json:"issuer,omitempty"`
	Audience  string         `json:"audience,omitempty"`
	TTL       timex.Duration `json:"ttl,omitempty"`
}

type Argon2 struct {
	Memory     uint32 `json:"memory,omitempty"`
	Iterations uint32 `json:"iterations,omitempty"`
	Threads    uint8  `json:"threads,omitempty"`
	SaltLength uint32 `json:"salt_length,omitempty"`
	KeyLength  uint32 `json:"key_length,omitempty"`
}

// Access configures the condition text gate. The text itself comes either
// from the environment or from a Parameter Store parameter.
type Access struct {
	ConditionText  string `json:"-" env:"ACCESS_CONDITION_TEXT"`
	ConditionParam string `json:"condition_param,omitempty" env:"ACCESS_CONDITION_PARAM"`
}

func (a *Access) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("condition_text_set", a.ConditionText != ""),
		slog.String("condition_param", a.ConditionParam),
	)
}

type Config struct {
	App    *App    `json:"app,omitempty"`
	Server *Server `json:"server,omitempty"`
	DB     *DB     `json:"db,omitempty"`
	JWT    *JWT    `json:"jwt,omitempty"`
	Argon2 *Argon2 `json:"argon2,omitempty"`
	Access *Access `json:"access,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("app", c.App),
		slog.Any("server", c.Server),
		slog.Any("db", c.DB),
		slog.Any("jwt", c.JWT),
		slog.Any("argon2", c.Argon2),
		slog.Any("access", c.Access),
	)
}

// Load reads the JSONC config file, applies environment overrides and fills defaults.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := env.OverrideStruct(cfg); err != nil {
		return nil, fmt.Errorf("override config with env: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.ensureKey(); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	raw, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	standard, err := hujson.Standardize(raw)
	if err != nil {
		return nil, fmt.Errorf("standardize config %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := json.Unmarshal(standard, &cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.DB == nil {
		c.DB = &DB{}
	}
	if c.JWT == nil {
		c.JWT = &JWT{}
	}
	if c.Argon2 == nil {
		c.Argon2 = &Argon2{}
	}
	if c.Access == nil {
		c.Access = &Access{}
	}

	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = defaultMaxBodyBytes
	}
	if c.Server.CORSAllowedOrigin == "" {
		c.Server.CORSAllowedOrigin = "*"
	}
	if c.DB.Name == "" {
		c.DB.Name = defaultDBName
	}
	if c.DB.PingTimeout.Duration == 0 {
		c.DB.PingTimeout.Duration = defaultPingTimeout
	}
	if c.JWT.JTILength == 0 {
		c.JWT.JTILength = 8
	}
	if c.JWT.TTL.Duration == 0 {
		c.JWT.TTL.Duration = 15 * time.Minute
	}
	if c.Argon2.Memory == 0 {
		c.Argon2.Memory = 64 * 1024
	}
	if c.Argon2.Iterations == 0 {
		c.Argon2.Iterations = 3
	}
	if c.Argon2.Threads == 0 {
		c.Argon2.Threads = 2
	}
	if c.Argon2.SaltLength == 0 {
		c.Argon2.SaltLength = 16
	}
	if c.Argon2.KeyLength == 0 {
		c.Argon2.KeyLength = 32
	}
}

func (c *Config) ensureKey() error {
	if c.App.Key != "" {
		return nil
	}

	key, err := security.GenerateRandomBytesStdEncoded(defaultKeyLength)
	if err != nil {
		return fmt.Errorf("generate app key: %w", err)
	}

	slog.Warn("KEY is not set, using a random key for this process. Access tokens will not survive a restart.")
	c.App.Key = key
	return nil
}
