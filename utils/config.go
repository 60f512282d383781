package utils

import (
	"fmt"
	"os"
	"strings"
	"techservice-backend/models"
	"time"

	"github.com/robfig/cron"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-super-secret-jwt-key-change-this-in-production"

// GetConfig read the configuration from environment variables or config files
func GetConfig() (*models.Config, error) {
	config, err := Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return config, nil
}

// Load initializes and returns the application configuration using Viper
func Load() (*models.Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../")
	v.AddConfigPath("../../")

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// Config file not found, continue with defaults and env vars
		fmt.Printf("Config file not found (%v), using defaults and environment variables\n", err)
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
		flattenNestedConfig(v)
	}

	var config models.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "TechService Backend")
	v.SetDefault("app_version", "1.0.0")
	v.SetDefault("app_env", "development")
	v.SetDefault("app_host", "0.0.0.0")
	v.SetDefault("app_port", "8081")

	v.SetDefault("jwt_secret", defaultJWTSecret)
	v.SetDefault("jwt_expires_in", 60*time.Minute)

	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("aws_access_key_id", "")
	v.SetDefault("aws_secret_access_key", "")
	v.SetDefault("dynamodb_endpoint", "")
	v.SetDefault("dynamodb_table_prefix", "dev")

	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("notification_queue", "notifications")

	v.SetDefault("analytics_cache_size", 128)
	v.SetDefault("analytics_cache_ttl", 5*time.Minute)
	v.SetDefault("bulk_update_max_items", 100)

	v.SetDefault("worker_enabled", true)
	v.SetDefault("worker_cron_schedule", "0 */30 * * * *")
	v.SetDefault("worker_lock_file", "/tmp/techservice/infra.lock")
	v.SetDefault("worker_max_retries", 3)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetDefault("cors_origins", []string{"*"})

	v.SetDefault("basePath", "/api/v1")

	v.SetDefault("tables", []string{"service_requests", "users", "audit_logs"})
}

// validate checks if all required configuration is provided
func validate(c *models.Config) error {
	if c.JWTSecret == defaultJWTSecret && c.AppEnv == "production" {
		return fmt.Errorf("JWT_SECRET must be set in production environment")
	}
	if c.JWTExpiresIn <= 0 {
		return fmt.Errorf("jwt_expires_in must be positive, got %v", c.JWTExpiresIn)
	}
	if c.BulkUpdateMaxItems < 1 || c.BulkUpdateMaxItems > 500 {
		return fmt.Errorf("bulk_update_max_items must be between 1 and 500, got %d", c.BulkUpdateMaxItems)
	}
	if c.AnalyticsCacheSize < 1 {
		return fmt.Errorf("analytics_cache_size must be at least 1")
	}
	if _, err := cron.Parse(c.WorkerCronSchedule); err != nil {
		return fmt.Errorf("invalid worker_cron_schedule %q: %w", c.WorkerCronSchedule, err)
	}
	if len(c.Tables) == 0 {
		return fmt.Errorf("at least one table must be configured")
	}
	return nil
}

// flattenNestedConfig maps the nested config.json sections onto flat keys
func flattenNestedConfig(v *viper.Viper) {
	mappings := map[string]string{
		"app.name":                  "app_name",
		"app.version":               "app_version",
		"app.env":                   "app_env",
		"app.host":                  "app_host",
		"app.port":                  "app_port",
		"jwt.secret":                "jwt_secret",
		"jwt.expires_in":            "jwt_expires_in",
		"aws.region":                "aws_region",
		"aws.access_key_id":         "aws_access_key_id",
		"aws.secret_access_key":     "aws_secret_access_key",
		"aws.dynamodb_endpoint":     "dynamodb_endpoint",
		"aws.dynamodb_table_prefix": "dynamodb_table_prefix",
		"redis.addr":                "redis_addr",
		"redis.password":            "redis_password",
		"redis.notification_queue":  "notification_queue",
		"analytics.cache_size":      "analytics_cache_size",
		"analytics.cache_ttl":       "analytics_cache_ttl",
		"analytics.bulk_max_items":  "bulk_update_max_items",
		"worker.enabled":            "worker_enabled",
		"worker.cron_schedule":      "worker_cron_schedule",
		"worker.lock_file":          "worker_lock_file",
		"worker.max_retries":        "worker_max_retries",
		"logging.level":             "log_level",
		"logging.format":            "log_format",
	}
	for nested, flat := range mappings {
		// environment variables win over the file
		if v.IsSet(nested) && !envIsSet(flat) {
			v.Set(flat, v.Get(nested))
		}
	}

	if v.IsSet("cors.origins") {
		v.Set("cors_origins", v.GetStringSlice("cors.origins"))
	}
}

func envIsSet(key string) bool {
	_, ok := os.LookupEnv(strings.ToUpper(key))
	return ok
}
