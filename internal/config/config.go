package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Alerts    AlertsConfig
	SMTP      SMTPConfig
	Assistant AssistantConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

// AlertsConfig controls the stock alert policy. Threshold and Recipient were
// hardcoded constants in earlier iterations of this system; they are startup
// configuration now.
type AlertsConfig struct {
	Threshold int    `mapstructure:"threshold"`
	Recipient string `mapstructure:"recipient"`
	// SuppressRepeats skips re-sending an alert while a product's quantity
	// is unchanged since the last one. Off by default: callers control
	// alert frequency by choosing when to run the sweep.
	SuppressRepeats bool `mapstructure:"suppress_repeats"`
}

type SMTPConfig struct {
	Server       string `mapstructure:"server"`
	Port         string `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	From         string `mapstructure:"from"`
	AuthDisabled bool   `mapstructure:"auth_disabled"`
}

type AssistantConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type RateLimitConfig struct {
	PerSecond float64 `mapstructure:"per_second"`
	Burst     int     `mapstructure:"burst"`
}

// Load loads configuration from environment variables and an optional
// config file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/stockwatch/")

	v.SetEnvPrefix("STOCKWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; environment variables and defaults apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("redis.addr", "localhost:6379")

	// Keys without a meaningful default still need to be registered so
	// AutomaticEnv can populate them during Unmarshal.
	v.SetDefault("database.url", "")
	v.SetDefault("alerts.recipient", "")
	v.SetDefault("smtp.server", "")
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "")
	v.SetDefault("smtp.auth_disabled", false)
	v.SetDefault("assistant.api_key", "")
	v.SetDefault("auth.jwt_secret", "")

	v.SetDefault("alerts.threshold", 10)
	v.SetDefault("alerts.suppress_repeats", false)

	v.SetDefault("smtp.port", "587")

	v.SetDefault("assistant.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("assistant.model", "gemini-1.5-flash")

	v.SetDefault("ratelimit.per_second", 1)
	v.SetDefault("ratelimit.burst", 3)
}

func validate(config *Config) error {
	if config.Database.URL == "" {
		return fmt.Errorf("database URL is required (set STOCKWATCH_DATABASE_URL)")
	}
	if config.Alerts.Threshold < 0 {
		return fmt.Errorf("alert threshold cannot be negative, got: %d", config.Alerts.Threshold)
	}
	if config.SMTP.Server != "" && config.Alerts.Recipient == "" {
		return fmt.Errorf("alert recipient is required when SMTP is configured (set STOCKWATCH_ALERTS_RECIPIENT)")
	}
	if config.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required (set STOCKWATCH_AUTH_JWT_SECRET)")
	}
	return nil
}
