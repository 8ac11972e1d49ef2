package config

import (
	"os"
	"testing"
)

func TestGetEnvWithDefault(t *testing.T) {
	const key = "TEST_APP_PORT"

	_ = os.Unsetenv(key)
	if got := getEnv(key, "5001"); got != "5001" {
		t.Fatalf("getEnv(%q) = %q, want %q", key, got, "5001")
	}

	if err := os.Setenv(key, "8080"); err != nil {
		t.Fatalf("Setenv error: %v", err)
	}
	defer os.Unsetenv(key)
	if got := getEnv(key, "5001"); got != "8080" {
		t.Fatalf("getEnv(%q) = %q, want %q", key, got, "8080")
	}
}

func TestLoadReadsPortAndAPIKey(t *testing.T) {
	_ = os.Setenv("APP_PORT", "1234")
	_ = os.Setenv("NEWSAPI_KEY", "test-key")
	defer func() {
		_ = os.Unsetenv("APP_PORT")
		_ = os.Unsetenv("NEWSAPI_KEY")
	}()

	cfg := Load()
	if cfg.AppPort != "1234" {
		t.Fatalf("AppPort = %q, want %q", cfg.AppPort, "1234")
	}
	if cfg.NewsAPIKey != "test-key" {
		t.Fatalf("NewsAPIKey = %q, want %q", cfg.NewsAPIKey, "test-key")
	}
}
