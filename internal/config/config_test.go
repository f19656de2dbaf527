package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != DefaultHTTPAddr {
		t.Fatalf("addr = %q, want %q", cfg.Server.Addr, DefaultHTTPAddr)
	}
	if cfg.Content.Dir != DefaultContentDir {
		t.Fatalf("content dir = %q, want %q", cfg.Content.Dir, DefaultContentDir)
	}
	if cfg.KeepAlive.Interval != DefaultKeepAliveInterval {
		t.Fatalf("interval = %q, want %q", cfg.KeepAlive.Interval, DefaultKeepAliveInterval)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[server]
addr = ":9000"
external_base_url = "https://bot.example.com"

[content]
dir = "converted"

[keep_alive]
interval = "5m"
timeout = "10s"

[log]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Fatalf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.StaticBaseURL() != "https://bot.example.com/static" {
		t.Fatalf("static base = %q", cfg.Server.StaticBaseURL())
	}
	if cfg.Content.Dir != "converted" {
		t.Fatalf("content dir = %q", cfg.Content.Dir)
	}
	if interval, err := cfg.KeepAlive.PingInterval(); err != nil || interval != 5*time.Minute {
		t.Fatalf("interval = %v, %v", interval, err)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("log format = %q", cfg.Log.Format)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "bad external url", mutate: func(c *Config) { c.Server.ExternalBaseURL = "not a url" }},
		{name: "bad interval", mutate: func(c *Config) { c.KeepAlive.Interval = "soon" }},
		{name: "negative interval", mutate: func(c *Config) { c.KeepAlive.Interval = "-1m" }},
		{name: "bad timeout", mutate: func(c *Config) { c.KeepAlive.Timeout = "whenever" }},
		{name: "empty content dir", mutate: func(c *Config) { c.Content.Dir = "" }},
		{name: "empty addr", mutate: func(c *Config) { c.Server.Addr = "" }},
	}
	for _, tc := range cases {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		if err != nil {
			t.Fatalf("%s: load: %v", tc.name, err)
		}
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
