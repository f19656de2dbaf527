package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

const (
	DefaultConfigPath        = "config.toml"
	DefaultHTTPAddr          = ":8081"
	DefaultContentDir        = "HTML_Conversion"
	DefaultKeepAliveInterval = "10m"
	DefaultSelfPingTimeout   = "15s"
)

type Config struct {
	Log       LogConfig       `toml:"log"`
	Server    ServerConfig    `toml:"server"`
	Content   ContentConfig   `toml:"content"`
	KeepAlive KeepAliveConfig `toml:"keep_alive"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type ServerConfig struct {
	Addr string `toml:"addr" validate:"required"`
	// ExternalBaseURL is the externally reachable base URL of this
	// deployment. It anchors content web links and is the self-ping
	// target for the keep-alive scheduler.
	ExternalBaseURL string `toml:"external_base_url" validate:"omitempty,url"`
}

type ContentConfig struct {
	Dir string `toml:"dir" validate:"required"`
}

type KeepAliveConfig struct {
	Interval string `toml:"interval" validate:"required"`
	Timeout  string `toml:"timeout" validate:"required"`
}

// StaticBaseURL returns the base URL under which the content collection
// is served. Empty when no external base URL is configured.
func (c ServerConfig) StaticBaseURL() string {
	if c.ExternalBaseURL == "" {
		return ""
	}
	return c.ExternalBaseURL + "/static"
}

// PingInterval parses the keep-alive interval.
func (c KeepAliveConfig) PingInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Interval)
	if err != nil {
		return 0, fmt.Errorf("keep-alive interval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("keep-alive interval must be positive")
	}
	return d, nil
}

// PingTimeout parses the per-ping HTTP timeout.
func (c KeepAliveConfig) PingTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("keep-alive timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("keep-alive timeout must be positive")
	}
	return d, nil
}

func Load(path string) (Config, error) {
	cfg := Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr: DefaultHTTPAddr,
		},
		Content: ContentConfig{
			Dir: DefaultContentDir,
		},
		KeepAlive: KeepAliveConfig{
			Interval: DefaultKeepAliveInterval,
			Timeout:  DefaultSelfPingTimeout,
		},
	}

	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks structural constraints that Load cannot default away.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.KeepAlive.PingInterval(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.KeepAlive.PingTimeout(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
