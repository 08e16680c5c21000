// Package config provides configuration loading for the time server.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "MCP_TIME"

// Config holds the complete configuration for the application. It is loaded
// once at startup and treated as read-only afterwards.
type Config struct {
	// LocalTimezone overrides the host zone shown in tool descriptions.
	LocalTimezone string

	Server struct {
		Name    string
		Version string
	}

	Log struct {
		Level string
	}
}

// Flags returns the command-line flags Load understands.
func Flags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("mcp-server-time", pflag.ContinueOnError)
	flags.String("local-timezone", "", "override the local IANA timezone (e.g. Europe/London)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("config", "", "optional config file (yaml, toml or json)")
	return flags
}

// Load builds the configuration from defaults, an optional config file,
// MCP_TIME_* environment variables and parsed flags, in increasing priority.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("local_timezone", "")
	v.SetDefault("server.name", "mcp-time")
	v.SetDefault("server.version", "1.0.0")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range map[string]string{
			"local_timezone": "local-timezone",
			"log.level":      "log-level",
		} {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}

		if file, err := flags.GetString("config"); err == nil && file != "" {
			v.SetConfigFile(file)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", file, err)
			}
		}
	}

	cfg := &Config{LocalTimezone: strings.TrimSpace(v.GetString("local_timezone"))}
	cfg.Server.Name = v.GetString("server.name")
	cfg.Server.Version = v.GetString("server.version")
	cfg.Log.Level = v.GetString("log.level")

	return cfg, nil
}

// Validate checks if all required configuration values are set
func (c *Config) Validate() error {
	var errors []string

	if c.Server.Name == "" {
		errors = append(errors, "server name must not be empty")
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errors = append(errors, fmt.Sprintf("log level %q: %v", c.Log.Level, err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
