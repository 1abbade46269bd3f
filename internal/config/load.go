package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "DEVSECOPS"

// Default values applied before the config file and environment are read.
const (
	DefaultPort                   = 8080
	DefaultLogLevel               = "info"
	DefaultReadTimeoutSeconds     = 10
	DefaultWriteTimeoutSeconds    = 10
	DefaultIdleTimeoutSeconds     = 60
	DefaultShutdownTimeoutSeconds = 10
	DefaultAppName                = "DevSecOpsDemo API"
	DefaultRateLimitRPS           = 10.0
	DefaultRateLimitBurst         = 20
)

// Load reads configuration from defaults, an optional config.yaml found in
// configPaths (the working directory when none are given), and environment
// variables. Environment variables take precedence over values from the file.
// Returns a populated Config or an error if loading or validation fails.
func Load(configPaths ...string) (*Config, error) {
	// Initialize a new viper instance
	v := viper.New()

	// Defaults also register every key, which AutomaticEnv needs for
	// Unmarshal to see environment-only values
	setDefaults(v)

	// Look for an optional config.yaml
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(configPaths) == 0 {
		configPaths = []string{"."}
	}
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	// A missing file is fine; a present but unreadable one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// server.port is read from DEVSECOPS_SERVER_PORT, and so on
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal the merged settings into the Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate against the struct tags declared in config.go
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers the default value of every configuration key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.read_timeout_seconds", DefaultReadTimeoutSeconds)
	v.SetDefault("server.write_timeout_seconds", DefaultWriteTimeoutSeconds)
	v.SetDefault("server.idle_timeout_seconds", DefaultIdleTimeoutSeconds)
	v.SetDefault("server.shutdown_timeout_seconds", DefaultShutdownTimeoutSeconds)
	v.SetDefault("server.trust_proxy_headers", false)
	v.SetDefault("app.name", DefaultAppName)
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests_per_second", DefaultRateLimitRPS)
	v.SetDefault("rate_limit.burst", DefaultRateLimitBurst)
}
