package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	os.Unsetenv("PORT")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.App.Port != 8080 {
		t.Fatalf("port = %d, want 8080", cfg.App.Port)
	}
	if cfg.Upload.MaxBytes != 1<<20 {
		t.Fatalf("upload max bytes = %d, want %d", cfg.Upload.MaxBytes, 1<<20)
	}
	if cfg.ShutdownTimeout() != 30*time.Second {
		t.Fatalf("shutdown timeout = %v, want 30s", cfg.ShutdownTimeout())
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("default environment should be development")
	}
}

func TestLoadYAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	body := `app:
  name: "Studio"
  environment: "production"
  port: 9000
upload:
  max_bytes: 4096
rate_limit:
  max_per_window: 5
  window_seconds: 10
  trust_proxy: true
palette:
  default_preset: "Paper"
`
	if err := os.WriteFile(configPath, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9100\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("ENVIRONMENT", "")
	os.Unsetenv("PORT")
	t.Cleanup(func() { os.Unsetenv("PORT") })

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.App.Name != "Studio" || cfg.App.Environment != "production" {
		t.Fatalf("app = %+v", cfg.App)
	}
	if cfg.App.Port != 9100 {
		t.Fatalf("port = %d, want .env override 9100", cfg.App.Port)
	}
	if cfg.Addr() != ":9100" {
		t.Fatalf("Addr() = %q", cfg.Addr())
	}
	if cfg.Upload.MaxBytes != 4096 {
		t.Fatalf("max bytes = %d", cfg.Upload.MaxBytes)
	}
	if cfg.RateLimit.MaxPerWindow != 5 || cfg.RateLimitWindow() != 10*time.Second || !cfg.RateLimit.TrustProxy {
		t.Fatalf("rate limit = %+v", cfg.RateLimit)
	}
	if cfg.App.ShutdownTimeoutSeconds != 30 {
		t.Fatalf("unset shutdown timeout should keep default, got %d", cfg.App.ShutdownTimeoutSeconds)
	}
	if cfg.Palette.DefaultPreset != "Paper" {
		t.Fatalf("default preset = %q", cfg.Palette.DefaultPreset)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad_yaml", body: "app: [unclosed"},
		{name: "zero_upload", body: "upload:\n  max_bytes: 0\n"},
		{name: "bad_port", body: "app:\n  port: 70000\n"},
		{name: "window_missing", body: "rate_limit:\n  max_per_window: 3\n  window_seconds: 0\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			os.Unsetenv("PORT")
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(test.body), 0644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := Load(configPath); err == nil {
				t.Fatalf("Load() accepted %s", test.name)
			}
		})
	}
}
