package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	S3     S3Config
	Gemini GeminiConfig
	Email  EmailConfig
	CORS   CORSConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings for policy document storage.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// GeminiConfig holds settings for the model analysis client. An empty or
// placeholder API key switches the service to fallback-only mode.
type GeminiConfig struct {
	APIKey      string `mapstructure:"api_key"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// Timeout returns the per-endpoint request timeout.
func (g *GeminiConfig) Timeout() time.Duration {
	if g.TimeoutSecs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(g.TimeoutSecs) * time.Second
}

// EmailConfig holds report email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the CLAIMGUARD_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CLAIMGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "claimguard")
	v.SetDefault("db.password", "claimguard_secret")
	v.SetDefault("db.name", "claimguard_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "claimguard-policies")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 50)
	v.SetDefault("s3.presign_expiry", 3600)

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.timeout_secs", 30)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "reports@claimguard.in")
	v.SetDefault("email.from_name", "ClaimGuard")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "CLAIMGUARD_SERVER_PORT",
		"server.read_timeout":  "CLAIMGUARD_SERVER_READ_TIMEOUT",
		"server.write_timeout": "CLAIMGUARD_SERVER_WRITE_TIMEOUT",
		"server.environment":   "CLAIMGUARD_SERVER_ENVIRONMENT",
		"db.host":              "CLAIMGUARD_DB_HOST",
		"db.port":              "CLAIMGUARD_DB_PORT",
		"db.user":              "CLAIMGUARD_DB_USER",
		"db.password":          "CLAIMGUARD_DB_PASSWORD",
		"db.name":              "CLAIMGUARD_DB_NAME",
		"db.sslmode":           "CLAIMGUARD_DB_SSLMODE",
		"db.max_open":          "CLAIMGUARD_DB_MAX_OPEN",
		"db.max_idle":          "CLAIMGUARD_DB_MAX_IDLE",
		"s3.region":            "CLAIMGUARD_S3_REGION",
		"s3.bucket":            "CLAIMGUARD_S3_BUCKET",
		"s3.endpoint":          "CLAIMGUARD_S3_ENDPOINT",
		"s3.access_key":        "CLAIMGUARD_S3_ACCESS_KEY",
		"s3.secret_key":        "CLAIMGUARD_S3_SECRET_KEY",
		"s3.max_file_size_mb":  "CLAIMGUARD_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":    "CLAIMGUARD_S3_PRESIGN_EXPIRY",
		"gemini.api_key":       "CLAIMGUARD_GEMINI_API_KEY",
		"gemini.timeout_secs":  "CLAIMGUARD_GEMINI_TIMEOUT_SECS",
		"email.provider":       "CLAIMGUARD_EMAIL_PROVIDER",
		"email.region":         "CLAIMGUARD_EMAIL_REGION",
		"email.from_address":   "CLAIMGUARD_EMAIL_FROM_ADDRESS",
		"email.from_name":      "CLAIMGUARD_EMAIL_FROM_NAME",
		"cors.allowed_origins": "CLAIMGUARD_CORS_ALLOWED_ORIGINS",
		"log.level":            "CLAIMGUARD_LOG_LEVEL",
		"log.format":           "CLAIMGUARD_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CLAIMGUARD_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CLAIMGUARD_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Gemini = GeminiConfig{
		APIKey:      v.GetString("gemini.api_key"),
		TimeoutSecs: v.GetInt("gemini.timeout_secs"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
