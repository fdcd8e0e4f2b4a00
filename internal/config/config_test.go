package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeCfg(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

const minimalCfg = `
upstream:
  base_url: "https://api.example.test"
`

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(writeCfg(t, minimalCfg))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q", c.Server.Addr)
	}
	if c.Locale.Default != "de" {
		t.Errorf("Locale.Default = %q", c.Locale.Default)
	}
	if len(c.Locale.Supported) != 3 {
		t.Errorf("Locale.Supported = %v", c.Locale.Supported)
	}
	if c.Cache.Kind != "memory" {
		t.Errorf("Cache.Kind = %q", c.Cache.Kind)
	}
	if c.Session.CookieName != "bh_sid" {
		t.Errorf("Session.CookieName = %q", c.Session.CookieName)
	}
	if Dur(c.Session.TTL) != 12*time.Hour {
		t.Errorf("Session.TTL = %q", c.Session.TTL)
	}
}

func TestLoad_MissingUpstreamFails(t *testing.T) {
	if _, err := Load(writeCfg(t, "app:\n  env: dev\n")); err == nil {
		t.Fatal("Load sin upstream.base_url debe fallar")
	}
}

func TestLoad_InvalidDurationFails(t *testing.T) {
	cfg := minimalCfg + "session:\n  ttl: \"doce horas\"\n"
	if _, err := Load(writeCfg(t, cfg)); err == nil {
		t.Fatal("Load con duración inválida debe fallar")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9999")
	t.Setenv("UPSTREAM_BASE_URL", "https://other.example.test")
	t.Setenv("LOCALE_DEFAULT", "en")
	t.Setenv("CACHE_KIND", "redis")
	t.Setenv("CACHE_REDIS_DB", "3")
	t.Setenv("METRICS_ENABLED", "true")

	c, err := Load(writeCfg(t, minimalCfg))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr != ":9999" {
		t.Errorf("Server.Addr = %q", c.Server.Addr)
	}
	if c.Upstream.BaseURL != "https://other.example.test" {
		t.Errorf("Upstream.BaseURL = %q", c.Upstream.BaseURL)
	}
	if c.Locale.Default != "en" {
		t.Errorf("Locale.Default = %q", c.Locale.Default)
	}
	if c.Cache.Kind != "redis" || c.Cache.Redis.DB != 3 {
		t.Errorf("Cache = %+v", c.Cache)
	}
	if !c.Metrics.Enabled {
		t.Error("Metrics.Enabled = false")
	}
}

func TestLoad_ProdForcesSecureCookies(t *testing.T) {
	t.Setenv("APP_ENV", "prod")

	c, err := Load(writeCfg(t, minimalCfg+"session:\n  secure: false\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.Session.Secure {
		t.Error("en prod las cookies deben ser Secure")
	}
}
