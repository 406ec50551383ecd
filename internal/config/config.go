package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"      validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"    validate:"required"`
	Auth       AuthConfig       `mapstructure:"auth"        validate:"required"`
	RequestLog RequestLogConfig `mapstructure:"request_log" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// BasePath prefixes every API route, e.g. "/precise/api". Empty mounts routes at the root.
	BasePath               string `mapstructure:"base_path"                validate:"omitempty,startswith=/"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                       validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gt=0"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gt=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gt=0,lte=1440"`
	BCryptCost           int    `mapstructure:"bcrypt_cost"            validate:"gte=4,lte=31"`
}

// RequestLogConfig controls the per-day request log files.
type RequestLogConfig struct {
	Dir       string `mapstructure:"dir"        validate:"required"`
	QueueSize int    `mapstructure:"queue_size" validate:"gt=0"`
}
