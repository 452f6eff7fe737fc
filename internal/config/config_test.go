package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdirTemp is t.Chdir(t.TempDir()) for Go versions before 1.24.
func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("chdir back: %v", err)
		}
	})
}

func writeConfig(t *testing.T, env, content string) {
	t.Helper()
	chdirTemp(t)
	if err := os.MkdirAll("config", 0o755); err != nil {
		t.Fatalf("mkdir config: %v", err)
	}
	path := filepath.Join("config", env+".yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

const minimalConfig = `
http:
  port: 8080
database:
  addrs:
    - localhost:6379
embedding:
  api_key: test-key
`

func TestLoad_AppliesDefaults(t *testing.T) {
	writeConfig(t, "unittest", minimalConfig)

	cfg, err := Load("unittest")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Search.DefaultLimit != 5 {
		t.Errorf("default limit = %d, want 5", cfg.Search.DefaultLimit)
	}
	if cfg.Search.MaxQueryLen != 500 {
		t.Errorf("max query len = %d, want 500", cfg.Search.MaxQueryLen)
	}
	if cfg.Search.CacheTTLSec != 3600 {
		t.Errorf("cache ttl = %d, want 3600", cfg.Search.CacheTTLSec)
	}
	if cfg.Search.KeyPrefix != "ai-search:" {
		t.Errorf("key prefix = %q, want ai-search:", cfg.Search.KeyPrefix)
	}
	if cfg.Embedding.Model != "text-embedding-3-small" {
		t.Errorf("model = %q", cfg.Embedding.Model)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_REDIS_ADDR", "redis.internal:6380")
	writeConfig(t, "unittest", `
http:
  port: 8080
database:
  addrs:
    - ${TEST_REDIS_ADDR}
embedding:
  api_key: ${TEST_MISSING_KEY:-fallback-key}
`)

	cfg, err := Load("unittest")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Addrs[0] != "redis.internal:6380" {
		t.Errorf("addr = %q", cfg.Database.Addrs[0])
	}
	if cfg.Embedding.APIKey != "fallback-key" {
		t.Errorf("api key = %q, want default fallback", cfg.Embedding.APIKey)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	chdirTemp(t)

	if _, err := Load("nonexistent"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		c := Config{}
		c.HTTP.Port = 8080
		c.Database.Addrs = []string{"localhost:6379"}
		c.Embedding.APIKey = "key"
		c.ApplyDefaults()
		return c
	}

	c := base()
	if err := c.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	c = base()
	c.HTTP.Port = 0
	if err := c.Validate(); err == nil {
		t.Error("expected error for port 0")
	}

	c = base()
	c.Database.Addrs = nil
	if err := c.Validate(); err == nil {
		t.Error("expected error for empty addrs")
	}

	c = base()
	c.Embedding.APIKey = ""
	if err := c.Validate(); err == nil {
		t.Error("expected error for missing api key")
	}

	c = base()
	c.Search.KeyPrefix = "ai-search"
	if err := c.Validate(); err == nil {
		t.Error("expected error for prefix without trailing colon")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("GetEnv() = %q, want local", got)
	}

	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv() = %q, want prod", got)
	}
}
