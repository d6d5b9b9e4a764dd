package config

import (
	"time"

	"github.com/vovakirdan/tweetboard/internal/api"
)

// Config holds client, web surface and dev backend configuration values.
type Config struct {
	BaseURL        string        `mapstructure:"base_url" yaml:"base_url"`
	LogLevel       string        `mapstructure:"log_level" yaml:"log_level"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
	Web            ServerConfig  `mapstructure:"web" yaml:"web"`
	Backend        BackendConfig `mapstructure:"backend" yaml:"backend"`
}

// ServerConfig configures an HTTP listener.
type ServerConfig struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// BackendConfig configures the development message service.
type BackendConfig struct {
	ServerConfig `mapstructure:",squash" yaml:",inline"`
	DatabasePath string `mapstructure:"database_path" yaml:"database_path"`
}

// Default returns configuration with reasonable starter defaults.
// RequestTimeout is zero: remote calls have no explicit timeout.
func Default() Config {
	return Config{
		BaseURL:  api.DefaultBaseURL,
		LogLevel: "info",
		Web: ServerConfig{
			Addr:              "127.0.0.1:8080",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		Backend: BackendConfig{
			ServerConfig: ServerConfig{
				Addr:              "127.0.0.1:8888",
				ReadHeaderTimeout: 5 * time.Second,
				ShutdownTimeout:   5 * time.Second,
			},
			DatabasePath: "tweets.db",
		},
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.BaseURL != "" {
		c.BaseURL = other.BaseURL
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.RequestTimeout != 0 {
		c.RequestTimeout = other.RequestTimeout
	}
	c.Web.updateFrom(other.Web)
	c.Backend.updateFrom(other.Backend.ServerConfig)
	if other.Backend.DatabasePath != "" {
		c.Backend.DatabasePath = other.Backend.DatabasePath
	}
}

func (s *ServerConfig) updateFrom(other ServerConfig) {
	if other.Addr != "" {
		s.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		s.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		s.ShutdownTimeout = other.ShutdownTimeout
	}
}
