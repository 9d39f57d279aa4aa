package config

import (
	"fmt"
	"net"

	"github.com/spf13/viper"
)

// Server holds the web server profile. Every key has a default and can be
// overridden through PULSE_* environment variables.
type Server struct {
	Host                   string `mapstructure:"host"`
	Port                   string `mapstructure:"port"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds"`
	LogLevel               string `mapstructure:"log_level"`
}

func (s *Server) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// LoadServer reads the server profile from the given file, if any, applying
// defaults and environment overrides.
func LoadServer(path string) (*Server, error) {
	v := viper.New()
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("port", "8080")
	v.SetDefault("shutdown_timeout_seconds", 10)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("PULSE")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	return &cfg, nil
}
