package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var envKeys = []string{
	"CONFIG_FILE", "STORE_DRIVER", "MONGO_URL", "REDIS_URL", "DB_NAME",
	"HOST", "PORT", "CORS_ORIGINS", "DEMO_RESET_CRON", "STATS_STREAM_INTERVAL",
}

// clearEnv blanks every variable Load reads; getEnv treats empty as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "campus_security")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Store.Driver != DriverMongo {
		t.Errorf("Store.Driver = %q, want %q", cfg.Store.Driver, DriverMongo)
	}
	if got := cfg.Server.Addr(); got != "0.0.0.0:8001" {
		t.Errorf("Server.Addr() = %q, want 0.0.0.0:8001", got)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "*" {
		t.Errorf("Server.CORSOrigins = %v, want [*]", cfg.Server.CORSOrigins)
	}
	if cfg.Dashboard.StreamInterval != 5*time.Second {
		t.Errorf("Dashboard.StreamInterval = %v, want 5s", cfg.Dashboard.StreamInterval)
	}
	if cfg.Demo.ResetCron != "" {
		t.Errorf("Demo.ResetCron = %q, want empty", cfg.Demo.ResetCron)
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("DB_NAME", "campus")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "http://a.local, http://b.local,")
	t.Setenv("DEMO_RESET_CRON", "@hourly")
	t.Setenv("STATS_STREAM_INTERVAL", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Store.Driver != DriverRedis || cfg.Store.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("Server.Port = %q, want 9000", cfg.Server.Port)
	}
	want := []string{"http://a.local", "http://b.local"}
	if strings.Join(cfg.Server.CORSOrigins, "|") != strings.Join(want, "|") {
		t.Errorf("Server.CORSOrigins = %v, want %v", cfg.Server.CORSOrigins, want)
	}
	if cfg.Demo.ResetCron != "@hourly" {
		t.Errorf("Demo.ResetCron = %q", cfg.Demo.ResetCron)
	}
	if cfg.Dashboard.StreamInterval != 250*time.Millisecond {
		t.Errorf("Dashboard.StreamInterval = %v, want 250ms", cfg.Dashboard.StreamInterval)
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `store:
  driver: memory
  db_name: from_file
server:
  port: "8100"
demo:
  reset_cron: "*/30 * * * *"
dashboard:
  stream_interval: 2s
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "8200")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Store.Driver != DriverMemory || cfg.Store.DBName != "from_file" {
		t.Errorf("Store = %+v", cfg.Store)
	}
	// environment wins over the file
	if cfg.Server.Port != "8200" {
		t.Errorf("Server.Port = %q, want 8200", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want default kept", cfg.Server.Host)
	}
	if cfg.Demo.ResetCron != "*/30 * * * *" {
		t.Errorf("Demo.ResetCron = %q", cfg.Demo.ResetCron)
	}
	if cfg.Dashboard.StreamInterval != 2*time.Second {
		t.Errorf("Dashboard.StreamInterval = %v, want 2s", cfg.Dashboard.StreamInterval)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing db name",
			env:     map[string]string{"MONGO_URL": "mongodb://localhost"},
			wantErr: "DB_NAME",
		},
		{
			name:    "missing mongo url",
			env:     map[string]string{"DB_NAME": "campus"},
			wantErr: "MONGO_URL",
		},
		{
			name:    "missing redis url",
			env:     map[string]string{"DB_NAME": "campus", "STORE_DRIVER": "redis"},
			wantErr: "REDIS_URL",
		},
		{
			name:    "unknown driver",
			env:     map[string]string{"DB_NAME": "campus", "STORE_DRIVER": "sqlite"},
			wantErr: "STORE_DRIVER",
		},
		{
			name:    "bad interval",
			env:     map[string]string{"DB_NAME": "campus", "STORE_DRIVER": "memory", "STATS_STREAM_INTERVAL": "soon"},
			wantErr: "STATS_STREAM_INTERVAL",
		},
		{
			name:    "missing config file",
			env:     map[string]string{"CONFIG_FILE": "/nonexistent/config.yaml"},
			wantErr: "config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NonPositiveInterval(t *testing.T) {
	cfg := defaults()
	cfg.Store = StoreConfig{Driver: DriverMemory, DBName: "campus"}
	cfg.Dashboard.StreamInterval = 0

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() succeeded with zero interval, want error")
	}
}
