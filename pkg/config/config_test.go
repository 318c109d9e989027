package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}

	if cfg.Backend.BaseURL != "https://api.ktutenis.test" {
		t.Fatalf("unexpected backend base url: %q", cfg.Backend.BaseURL)
	}

	if got := cfg.Backend.RequestTimeout; got != 10*time.Second {
		t.Fatalf("expected default request timeout 10s, got %v", got)
	}

	if cfg.FeatureFlags.PermissionCheckEnabled {
		t.Fatal("permission check must default to disabled")
	}

	if cfg.Redis.Enabled() {
		t.Fatal("redis should be disabled when no endpoint is set")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvBackendBaseURL); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvBackendBaseURL, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RelativeBackendURL(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvBackendBaseURL, "/just/a/path")

	if _, err := Load(); err == nil {
		t.Fatal("expected relative backend url to be rejected")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8080")
	t.Setenv(EnvBackendBaseURL, "https://api.ktutenis.test")
	t.Setenv(EnvRedisURL, "")
	t.Setenv(EnvPermissionFlag, "false")
}
