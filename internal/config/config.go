// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

// Config holds the service configuration, loaded from config/.env and the environment.
type Config struct {
	APIHost string `validate:"required"`
	Port    int    `validate:"required,min=1,max=65535"`
	// LMSURL is the base URL of the upstream LMS that owns courses, users,
	// enrollments, roles and analytics.
	LMSURL   string `validate:"required,url"`
	LMSToken string `validate:"required"`
	// JWTSecret verifies the HS256 requester tokens sent by the dashboard.
	JWTSecret string `validate:"required,min=16"`
	// RedisAddr switches background task dispatch to an asynq queue when set.
	RedisAddr string `validate:"omitempty,hostname_port"`
	TaskQueue string `validate:"required"`
	// LogLevel is applied to the global logger once configuration is loaded.
	LogLevel string `validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
}

// Load reads DefaultConfigFile (if present) and the environment.
func Load() (*Config, error) {
	return LoadFile(DefaultConfigFile)
}

// LoadFile reads configuration from an env-format file and the environment.
// Environment variables win over file values. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetDefault("API_HOST", DefaultAPIHost)
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("TASK_QUEUE", DefaultTaskQueue)
	v.SetDefault("LOG_LEVEL", DefaultLogLevel)

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	cfg := &Config{
		APIHost:   v.GetString("API_HOST"),
		Port:      v.GetInt("PORT"),
		LMSURL:    v.GetString("LMS_URL"),
		LMSToken:  v.GetString("LMS_TOKEN"),
		JWTSecret: v.GetString("JWT_SECRET"),
		RedisAddr: v.GetString("REDIS_ADDR"),
		TaskQueue: v.GetString("TASK_QUEUE"),
		LogLevel:  strings.ToLower(v.GetString("LOG_LEVEL")),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return cfg, nil
}

// Address is the host:port the HTTP server binds to.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.Port)
}

// UseTaskQueue reports whether background tasks go to Redis instead of the LMS.
func (c Config) UseTaskQueue() bool {
	return c.RedisAddr != ""
}
