package config

import "fmt"

// Config is the top level application configuration, assembled from
// environment variables at startup.
type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	GinMode string
}

// LoadFromEnv assembles the full configuration from the environment.
func LoadFromEnv() Config {
	return Config{
		Server:  LoadServerConfigFromEnv(),
		Logger:  LoadLoggerConfigFromEnv(),
		GinMode: GetEnv("GIN_MODE", "release"),
	}
}

// Validate checks every section and the gin mode.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config: %w", err)
	}

	switch c.GinMode {
	case "debug", "release", "test":
		return nil
	default:
		return fmt.Errorf("invalid GIN_MODE %q, want debug, release or test", c.GinMode)
	}
}
