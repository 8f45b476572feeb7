package config

import (
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL              string `mapstructure:"DATABASE_URL"`
	DatabaseDriver           string `mapstructure:"DB_DRIVER"`
	DatabaseHost             string `mapstructure:"DB_HOST"`
	DatabasePort             string `mapstructure:"DB_PORT"`
	DatabaseUser             string `mapstructure:"DB_USER"`
	DatabasePassword         string `mapstructure:"DB_PASSWORD"`
	DatabaseName             string `mapstructure:"DB_NAME"`
	DatabaseEncrypt          bool   `mapstructure:"DB_ENCRYPT"`
	DatabaseTrustCertificate bool   `mapstructure:"DB_TRUST_CERTIFICATE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Company scoping
	DefaultCompanyID uint `mapstructure:"DEFAULT_COMPANY_ID"`

	// Unified search
	SearchGroupLimit int `mapstructure:"SEARCH_GROUP_LIMIT"`
}

const defaultJWTSecret = "your-secret-key-change-in-production"

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = BuildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "imobiliaria")
	viper.SetDefault("DB_ENCRYPT", false)
	viper.SetDefault("DB_TRUST_CERTIFICATE", true)

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	viper.SetDefault("DEFAULT_COMPANY_ID", 1)
	viper.SetDefault("SEARCH_GROUP_LIMIT", 25)
}

// BuildDatabaseURL assembles the DSN for the configured driver. For sqlite the
// database name is the file path (":memory:" is accepted).
func BuildDatabaseURL(config *Config) string {
	if config.DatabaseDriver == "sqlite" {
		return config.DatabaseName
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(config.DatabaseUser),
		url.QueryEscape(config.DatabasePassword),
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		SSLMode(config.DatabaseEncrypt, config.DatabaseTrustCertificate),
	)
}

// SSLMode maps the encrypt/trust-certificate pair onto a postgres sslmode
func SSLMode(encrypt, trustCertificate bool) string {
	switch {
	case !encrypt:
		return "disable"
	case trustCertificate:
		return "require"
	default:
		return "verify-full"
	}
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" && config.DatabaseURL == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", config.DatabaseDriver)
	}

	if config.DefaultCompanyID == 0 {
		return fmt.Errorf("DEFAULT_COMPANY_ID must be a positive company id")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
