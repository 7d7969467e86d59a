package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Identity IdentityConfig
	Storage  StorageConfig
	Backup   BackupConfig
	Holidays HolidaysConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// IdentityConfig selects where login identities are provisioned.
// "local" keeps them in the auth_users table, "remote" calls an admin API.
type IdentityConfig struct {
	Provider    string
	BaseURL     string
	ServiceKey  string
	EmailDomain string
}

type StorageConfig struct {
	Type     string
	BasePath string
}

type BackupConfig struct {
	Enabled  bool
	Interval time.Duration
	Prefix   string
	Keep     int
}

type HolidaysConfig struct {
	File string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "teamtime"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Identity provider configuration
	config.Identity = IdentityConfig{
		Provider:    getEnv("IDENTITY_PROVIDER", "local"),
		BaseURL:     strings.TrimRight(getEnv("IDENTITY_BASE_URL", ""), "/"),
		ServiceKey:  getEnv("IDENTITY_SERVICE_KEY", ""),
		EmailDomain: getEnv("IDENTITY_EMAIL_DOMAIN", "teamtime.local"),
	}

	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./data"),
	}

	// Backup configuration
	backupInterval, err := time.ParseDuration(getEnv("BACKUP_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKUP_INTERVAL: %w", err)
	}
	backupEnabled, err := strconv.ParseBool(getEnv("BACKUP_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKUP_ENABLED: %w", err)
	}

	backupKeep, err := strconv.Atoi(getEnv("BACKUP_KEEP", "14"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKUP_KEEP: %w", err)
	}

	config.Backup = BackupConfig{
		Enabled:  backupEnabled,
		Interval: backupInterval,
		Prefix:   getEnv("BACKUP_PREFIX", "backups"),
		Keep:     backupKeep,
	}

	config.Holidays = HolidaysConfig{
		File: getEnv("HOLIDAYS_FILE", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.ParseDuration(c.JWT.RefreshExpiration); err != nil {
		return fmt.Errorf("invalid JWT_REFRESH_EXPIRATION_TIME: %w", err)
	}

	switch c.Identity.Provider {
	case "local":
	case "remote":
		if c.Identity.BaseURL == "" {
			return fmt.Errorf("IDENTITY_BASE_URL is required for the remote identity provider")
		}
		if c.Identity.ServiceKey == "" {
			return fmt.Errorf("IDENTITY_SERVICE_KEY is required for the remote identity provider")
		}
	default:
		return fmt.Errorf("unsupported IDENTITY_PROVIDER: %s", c.Identity.Provider)
	}

	switch c.Storage.Type {
	case "local", "none":
	default:
		return fmt.Errorf("unsupported STORAGE_TYPE: %s", c.Storage.Type)
	}

	if c.Backup.Enabled && c.Backup.Interval <= 0 {
		return fmt.Errorf("BACKUP_INTERVAL must be positive")
	}
	if c.Backup.Enabled && c.Storage.Type == "none" {
		return fmt.Errorf("BACKUP_ENABLED requires STORAGE_TYPE=local")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
