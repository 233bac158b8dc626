package config

import (
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	AppPort     string
	DatabaseDSN string
	JWTSecret   string
	RabbitMQURL string
	LogLevel    string
	LogFormat   string // "json" or "console"
}

// Load reads configuration from environment variables with sane defaults.
// An empty DatabaseDSN makes the app fall back to in-memory repositories.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")
	viper.AutomaticEnv()

	return &Config{
		AppPort:     viper.GetString("APP_PORT"),
		DatabaseDSN: viper.GetString("DATABASE_DSN"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		LogFormat:   viper.GetString("LOG_FORMAT"),
	}
}
