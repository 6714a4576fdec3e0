package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_RequiresCredentials(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail without credentials")
	}
}

func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TWILIO_ACCOUNT_SID", "ACxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx")
	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	t.Setenv("UPLOADS_DIR", filepath.Join(tmpDir, "uploads"))
	t.Setenv("EXPORTS_DIR", filepath.Join(tmpDir, "exports"))
	t.Setenv("DATABASE_PATH", filepath.Join(tmpDir, "audit.db"))
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("TWILIO_API_BASE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.APIBase != defaultAPIBase {
		t.Errorf("APIBase = %q, want %q", cfg.APIBase, defaultAPIBase)
	}
	if cfg.TrustHubBase != defaultTrustHubBase {
		t.Errorf("TrustHubBase = %q, want %q", cfg.TrustHubBase, defaultTrustHubBase)
	}
	if cfg.HTTPTimeout != defaultHTTPTimeout {
		t.Errorf("HTTPTimeout = %v, want %v", cfg.HTTPTimeout, defaultHTTPTimeout)
	}
	if cfg.PageLimit != defaultPageLimit {
		t.Errorf("PageLimit = %d, want %d", cfg.PageLimit, defaultPageLimit)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TWILIO_ACCOUNT_SID", "ACxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx")
	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	t.Setenv("UPLOADS_DIR", filepath.Join(tmpDir, "up"))
	t.Setenv("EXPORTS_DIR", filepath.Join(tmpDir, "ex"))
	t.Setenv("DATABASE_PATH", filepath.Join(tmpDir, "db", "audit.db"))
	t.Setenv("TWILIO_API_BASE", "http://localhost:4010")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("PAGE_LIMIT", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.APIBase != "http://localhost:4010" {
		t.Errorf("APIBase = %q, want override", cfg.APIBase)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout = %v, want 5s", cfg.HTTPTimeout)
	}
	if cfg.PageLimit != 50 {
		t.Errorf("PageLimit = %d, want 50", cfg.PageLimit)
	}
}

func TestGetEnvDuration_BareSeconds(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "45")
	if got := getEnvDuration("SOME_TIMEOUT", time.Second); got != 45*time.Second {
		t.Errorf("getEnvDuration() = %v, want 45s", got)
	}
}

func TestGetEnvDuration_Invalid(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "soon")
	if got := getEnvDuration("SOME_TIMEOUT", 7*time.Second); got != 7*time.Second {
		t.Errorf("getEnvDuration() = %v, want default 7s", got)
	}
}
