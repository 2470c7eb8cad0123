package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")
	t.Setenv("CACHE_BACKEND", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != 8000 {
		t.Errorf("Port = %d, want 8000", cfg.Port)
	}
	if cfg.MaxRate != 100 {
		t.Errorf("MaxRate = %v, want 100", cfg.MaxRate)
	}
	if cfg.CacheBackend != CacheBackendMemory {
		t.Errorf("CacheBackend = %s, want memory", cfg.CacheBackend)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %s, want 10s", cfg.RequestTimeout)
	}
	if cfg.Addr() != ":8000" {
		t.Errorf("Addr() = %s, want :8000", cfg.Addr())
	}
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "calc.toml")
	content := `
port = 9100
max_rate = 50
cache_backend = "none"
cache_ttl = "2m"
log_format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9200")
	t.Setenv("CACHE_BACKEND", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != 9200 {
		t.Errorf("Port = %d, want env override 9200", cfg.Port)
	}
	if cfg.MaxRate != 50 {
		t.Errorf("MaxRate = %v, want 50 from file", cfg.MaxRate)
	}
	if cfg.CacheBackend != CacheBackendNone {
		t.Errorf("CacheBackend = %s, want none", cfg.CacheBackend)
	}
	if cfg.CacheTTL != 2*time.Minute {
		t.Errorf("CacheTTL = %s, want 2m", cfg.CacheTTL)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %s, want json", cfg.LogFormat)
	}
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")
	t.Setenv("CACHE_BACKEND", "memcached")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() error = nil, want unknown backend error")
	}
}

func TestGetEnvFallsBackOnGarbage(t *testing.T) {
	t.Setenv("CALC_TEST_INT", "abc")
	t.Setenv("CALC_TEST_DURATION", "ten seconds")

	if got := getEnvInt("CALC_TEST_INT", 7); got != 7 {
		t.Errorf("getEnvInt() = %d, want 7", got)
	}
	if got := getEnvDuration("CALC_TEST_DURATION", time.Second); got != time.Second {
		t.Errorf("getEnvDuration() = %s, want 1s", got)
	}
}
