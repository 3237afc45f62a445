package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseAPIServer_AppliesDefaults(t *testing.T) {
	cfg, err := ParseAPIServer([]byte(`
database:
  user: offers
`))
	if err != nil {
		t.Fatalf("ParseAPIServer() failed: %v", err)
	}

	if cfg.Server.Port != 8081 {
		t.Fatalf("expected default port 8081, got %d", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected default shutdown timeout, got %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Server.ReadHeaderTimeout != 5*time.Second {
		t.Fatalf("expected default read header timeout, got %s", cfg.Server.ReadHeaderTimeout)
	}
	if cfg.Database.Database != "swap_offers" {
		t.Fatalf("expected default database name, got %q", cfg.Database.Database)
	}
	if cfg.Offers.FallbackPolicy != "participants" {
		t.Fatalf("expected participants fallback policy, got %q", cfg.Offers.FallbackPolicy)
	}
	if cfg.Auth.WalletHeader != "X-Wallet-Address" {
		t.Fatalf("expected default wallet header, got %q", cfg.Auth.WalletHeader)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.Burst != 20 {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
}

func TestParseAPIServer_ExpandsEnv(t *testing.T) {
	t.Setenv("SWAP_DB_PASSWORD", "s3cret")

	cfg, err := ParseAPIServer([]byte(`
database:
  user: offers
  password: ${SWAP_DB_PASSWORD}
`))
	if err != nil {
		t.Fatalf("ParseAPIServer() failed: %v", err)
	}
	if cfg.Database.Password != "s3cret" {
		t.Fatalf("expected expanded password, got %q", cfg.Database.Password)
	}
}

func TestParseAPIServer_RejectsUnknownFallbackPolicy(t *testing.T) {
	_, err := ParseAPIServer([]byte(`
database:
  user: offers
offers:
  fallback_policy: anyone
`))
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "FallbackPolicy") {
		t.Fatalf("expected fallback policy validation failure, got %v", err)
	}
}

func TestParseAPIServer_RequiresDatabaseUser(t *testing.T) {
	if _, err := ParseAPIServer([]byte(`server: {port: 9000}`)); err == nil {
		t.Fatal("expected validation error for missing database user")
	}
}

func TestLoadAPIServer_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  port: 9090\ndatabase:\n  user: offers\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadAPIServer(path)
	if err != nil {
		t.Fatalf("LoadAPIServer() failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Server.Port)
	}

	if _, err := LoadAPIServer(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := NewLogger(LoggingConfig{Level: "loud", Format: "json"}); err == nil {
		t.Fatal("expected error for invalid level")
	}
	logger, err := NewLogger(LoggingConfig{Level: "debug", Format: "console"})
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}
	_ = logger.Sync()
}

func TestNewLogger_WritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "api.log")

	logger, err := NewLogger(LoggingConfig{Level: "info", Format: "json", OutputPath: path, MaxSizeMB: 1})
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}
	logger.Info("offer created")
	logger.Debug("filtered out")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	out := string(raw)
	if !strings.Contains(out, `"msg":"offer created"`) || !strings.Contains(out, `"app":"swap-offers"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
	if strings.Contains(out, "filtered out") {
		t.Fatalf("debug entry must be filtered at info level: %s", out)
	}
}

func TestParseAPIServer_RejectsZeroShutdownTimeout(t *testing.T) {
	_, err := ParseAPIServer([]byte("database:\n  user: test\nserver:\n  shutdown_timeout: 0s\n"))
	if err == nil || !strings.Contains(err.Error(), "ShutdownTimeout") {
		t.Fatalf("expected shutdown timeout validation error, got %v", err)
	}
}
