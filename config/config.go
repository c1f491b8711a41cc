package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig

	// Event page
	LinkAPI   LinkAPIConfig
	Permalink PermalinkConfig
	Display   DisplayConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LinkAPIConfig points at the generate-link service.
type LinkAPIConfig struct {
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

type PermalinkConfig struct {
	BaseURL string
}

// DisplayConfig controls how event start times are shown.
type DisplayConfig struct {
	Timezone string
}

// Load loads configuration using Viper.
// A .env file is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Split allowed origins since viper might not parse array seamlessly from env
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	// Event page
	cfg.LinkAPI.BaseURL = viper.GetString("link_api.base_url")
	cfg.LinkAPI.Timeout = viper.GetDuration("link_api.timeout")
	cfg.LinkAPI.RetryAttempts = viper.GetInt("link_api.retry_attempts")
	cfg.LinkAPI.RetryDelay = viper.GetDuration("link_api.retry_delay")
	cfg.Permalink.BaseURL = viper.GetString("permalink.base_url")
	cfg.Display.Timezone = viper.GetString("display.timezone")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 30)
	viper.SetDefault("cors.allowed_origins", "")

	viper.SetDefault("link_api.base_url", "https://calendar-link-server.onrender.com")
	viper.SetDefault("link_api.timeout", "30s")
	viper.SetDefault("link_api.retry_attempts", 1)
	viper.SetDefault("link_api.retry_delay", "1s")
	viper.SetDefault("permalink.base_url", "https://linkylink.lol/")
	viper.SetDefault("display.timezone", "UTC")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if cfg.LinkAPI.BaseURL == "" {
		return fmt.Errorf("link_api.base_url is required")
	}
	if cfg.LinkAPI.Timeout <= 0 {
		return fmt.Errorf("link_api.timeout must be positive")
	}
	if cfg.LinkAPI.RetryAttempts < 1 {
		return fmt.Errorf("link_api.retry_attempts must be at least 1")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
