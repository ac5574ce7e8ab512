// Package config loads the immutable service configuration.
//
// Secrets (the bearer token and the phone identifier) come from the
// environment, optionally seeded from a .env file. Non-secret settings
// (listen address, timeouts, log level) come from an optional YAML file.
// The resulting Config value is constructed once at startup, injected into
// the components that read it, and never mutated afterwards.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"mcp-textutils-service/pkg/errors"
)

const (
	// ServerName is the MCP server identifier advertised during initialization
	ServerName = "text-utilities-server"

	// ServerVersion is the service version advertised during initialization
	ServerVersion = "1.0.0"

	// DefaultEnvFile is the default location of the secrets file
	DefaultEnvFile = ".env"

	// Environment variable names, matching the deployment's existing .env files
	EnvAuthToken   = "AUTH_TOKEN"
	EnvPhoneNumber = "MY_NUMBER"
)

// Settings holds the non-secret, YAML-configurable service settings
type Settings struct {
	GatewayHost string `yaml:"gateway_host"`
	GatewayPort int    `yaml:"gateway_port"`
	ToolTimeout string `yaml:"tool_timeout"`
	LogLevel    string `yaml:"log_level"`
}

// Config is the immutable service configuration. It is read-only after Load;
// every consumer receives it by injection rather than via process globals.
type Config struct {
	// AuthToken is the secret the validate tool compares against
	AuthToken string

	// PhoneNumber is the identifier returned on successful validation
	PhoneNumber string

	GatewayHost string
	GatewayPort int
	ToolTimeout time.Duration
	LogLevel    string

	// EnvFile records which secrets file was loaded, for change monitoring
	EnvFile string
}

// DefaultSettings returns the built-in settings used when no YAML file exists
func DefaultSettings() Settings {
	return Settings{
		GatewayHost: "0.0.0.0",
		GatewayPort: 8086,
		ToolTimeout: "10s",
		LogLevel:    "INFO",
	}
}

// Load builds the service configuration from a .env secrets file and an
// optional YAML settings file. An empty envFile falls back to DefaultEnvFile;
// an empty settingsFile skips file loading entirely.
//
// Missing AUTH_TOKEN or MY_NUMBER is a fatal condition: per the error
// handling policy this is the only class of failure allowed to abort startup.
func Load(envFile, settingsFile string) (*Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	// The .env file is optional: the variables may come from the real
	// environment (container deployments). godotenv never overrides
	// variables that are already set.
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
				fmt.Sprintf("failed to load env file %s", envFile), err)
		}
	}

	token := os.Getenv(EnvAuthToken)
	number := os.Getenv(EnvPhoneNumber)
	if token == "" || number == "" {
		return nil, errors.NewConfigError(errors.ErrCodeMissingConfig,
			fmt.Sprintf("please set %s and %s in your environment or .env file",
				EnvAuthToken, EnvPhoneNumber), nil)
	}

	settings := DefaultSettings()
	if settingsFile != "" {
		loaded, err := loadSettingsFile(settingsFile)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	timeout, err := time.ParseDuration(settings.ToolTimeout)
	if err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("invalid tool_timeout %q", settings.ToolTimeout), err)
	}

	return &Config{
		AuthToken:   token,
		PhoneNumber: number,
		GatewayHost: settings.GatewayHost,
		GatewayPort: settings.GatewayPort,
		ToolTimeout: timeout,
		LogLevel:    settings.LogLevel,
		EnvFile:     envFile,
	}, nil
}

// loadSettingsFile reads and parses the YAML settings file. Fields not set
// in the file keep their defaults.
func loadSettingsFile(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("failed to read settings file %s", path), err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("failed to parse settings file %s", path), err)
	}

	return settings, nil
}

// GatewayAddr returns the host:port pair the HTTP gateway listens on
func (c *Config) GatewayAddr() string {
	return fmt.Sprintf("%s:%d", c.GatewayHost, c.GatewayPort)
}
