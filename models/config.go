package models

import "time"

// Config holds all configuration for the application
type Config struct {
	// Application
	AppName    string `mapstructure:"app_name"`
	AppVersion string `mapstructure:"app_version"`
	AppEnv     string `mapstructure:"app_env"`
	AppHost    string `mapstructure:"app_host"`
	AppPort    string `mapstructure:"app_port"`

	// JWT
	JWTSecret    string        `mapstructure:"jwt_secret"`
	JWTExpiresIn time.Duration `mapstructure:"jwt_expires_in"`

	// AWS
	AWSRegion           string `mapstructure:"aws_region"`
	AWSAccessKeyID      string `mapstructure:"aws_access_key_id"`
	AWSSecretAccessKey  string `mapstructure:"aws_secret_access_key"`
	DynamoDBEndpoint    string `mapstructure:"dynamodb_endpoint"`
	DynamoDBTablePrefix string `mapstructure:"dynamodb_table_prefix"`

	// Redis backs the notification queue. Empty disables queueing.
	RedisAddr         string `mapstructure:"redis_addr"`
	RedisPassword     string `mapstructure:"redis_password"`
	NotificationQueue string `mapstructure:"notification_queue"`

	// Analytics report cache
	AnalyticsCacheSize int           `mapstructure:"analytics_cache_size"`
	AnalyticsCacheTTL  time.Duration `mapstructure:"analytics_cache_ttl"`

	BulkUpdateMaxItems int `mapstructure:"bulk_update_max_items"`

	// Infrastructure worker
	WorkerEnabled      bool   `mapstructure:"worker_enabled"`
	WorkerCronSchedule string `mapstructure:"worker_cron_schedule"`
	WorkerLockFile     string `mapstructure:"worker_lock_file"`
	WorkerMaxRetries   int    `mapstructure:"worker_max_retries"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// CORS
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Base Path
	BasePath string `mapstructure:"basePath"`

	Tables []string `mapstructure:"tables"`
}

// TableName returns the prefixed DynamoDB table name for a logical table
func (c *Config) TableName(base string) string {
	return c.DynamoDBTablePrefix + "_" + base
}
