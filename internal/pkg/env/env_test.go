package env_test

import (
	"reflect"
	"testing"

	"github.com/ferdiebergado/jobnotes/internal/pkg/env"
)

func TestOverrideStruct(t *testing.T) {
	const (
		wantEnv     = "testing"
		wantCons    = 10
		wantConsStr = "10"
		wantURI     = "mongodb://localhost:27017"
	)

	type dbOpts struct {
		URI         string `env:"MONGODB_URI"`
		MaxOpenConn int    `env:"DB_MAX_OPEN_CONNS"`
		Name        string `env:"DB_NAME"`
	}

	type settings struct {
		Env    string `env:"ENV"`
		DBOpts *dbOpts
	}

	got := settings{
		Env: "development",
		DBOpts: &dbOpts{
			MaxOpenConn: 3,
			Name:        "recent_job",
		},
	}

	t.Setenv("ENV", wantEnv)
	t.Setenv("DB_MAX_OPEN_CONNS", wantConsStr)
	t.Setenv("MONGODB_URI", wantURI)

	if err := env.OverrideStruct(&got); err != nil {
		t.Fatal(err)
	}

	want := settings{
		Env: "testing",
		DBOpts: &dbOpts{
			URI:         wantURI,
			MaxOpenConn: wantCons,
			Name:        "recent_job",
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("env.OverrideStruct(&got) = %+v, want: %+v", got, want)
	}
}

func TestOverrideStruct_InvalidInt(t *testing.T) {
	type settings struct {
		Port int `env:"PORT"`
	}

	t.Setenv("PORT", "eighty")

	var s settings
	if err := env.OverrideStruct(&s); err == nil {
		t.Errorf("env.OverrideStruct(&s) = %v, want: error", err)
	}
}

func TestOverrideStruct_NotAPointer(t *testing.T) {
	t.Parallel()

	type settings struct{}

	if err := env.OverrideStruct(settings{}); err == nil {
		t.Errorf("env.OverrideStruct(settings{}) = %v, want: error", err)
	}
}

func TestEnv(t *testing.T) {
	const fallback = "example.com"

	tests := []struct {
		name, envVar, envVal, fallback, val string
	}{
		{"EnvVar is set", "HOST", "localhost", fallback, "localhost"},
		{"EnvVar is not set", "HOST", "", fallback, fallback},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envVal != "" {
				t.Setenv(tc.envVar, tc.envVal)
			}
			val := env.Env(tc.envVar, tc.fallback)

			if val != tc.val {
				t.Errorf("env.Env(%q, %q) = %q, want: %q", tc.envVar, tc.fallback, val, tc.val)
			}
		})
	}
}
