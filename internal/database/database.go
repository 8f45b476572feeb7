package database

import (
	"fmt"
	"time"

	"imobiliaria-backend/internal/config"
	"imobiliaria-backend/internal/database/models"
	apperrors "imobiliaria-backend/internal/errors"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Options struct {
	Driver          string
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// ConnectionOptions are the recognized connection settings
type ConnectionOptions struct {
	Driver           string
	Host             string
	Port             string
	Database         string
	User             string
	Password         string
	Encrypt          bool
	TrustCertificate bool
}

// OptionsFromConfig extracts the connection settings from the application config
func OptionsFromConfig(cfg *config.Config) ConnectionOptions {
	return ConnectionOptions{
		Driver:           cfg.DatabaseDriver,
		Host:             cfg.DatabaseHost,
		Port:             cfg.DatabasePort,
		Database:         cfg.DatabaseName,
		User:             cfg.DatabaseUser,
		Password:         cfg.DatabasePassword,
		Encrypt:          cfg.DatabaseEncrypt,
		TrustCertificate: cfg.DatabaseTrustCertificate,
	}
}

// DSN renders the connection options as a driver DSN
func (o ConnectionOptions) DSN() string {
	return config.BuildDatabaseURL(&config.Config{
		DatabaseDriver:           o.Driver,
		DatabaseHost:             o.Host,
		DatabasePort:             o.Port,
		DatabaseName:             o.Database,
		DatabaseUser:             o.User,
		DatabasePassword:         o.Password,
		DatabaseEncrypt:          o.Encrypt,
		DatabaseTrustCertificate: o.TrustCertificate,
	})
}

// Connect opens a live connection from the recognized options
func Connect(conn ConnectionOptions, opts *Options) (*gorm.DB, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts.Driver = conn.Driver
	return Initialize(conn.DSN(), opts)
}

// Initialize opens a connection for the configured driver and creates the schema
// from GORM models. Any failure to reach the store is reported as a ConnectionError.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.Driver == "" {
		opts.Driver = DriverPostgres
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	var dialector gorm.Dialector
	switch opts.Driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("unsupported database driver %q", opts.Driver))
	}

	// Open DB
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, apperrors.NewConnectionError("open "+opts.Driver, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, apperrors.NewConnectionError("acquire pool", err)
	}
	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, apperrors.NewConnectionError("ping "+opts.Driver, err)
	}

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or updates the schema for all models
func Migrate(db *gorm.DB) error {
	all := []interface{}{
		&models.Company{},
		&models.Landlord{},
		&models.Tenant{},
		&models.Property{},
		&models.Contract{},
		&models.Settlement{},
	}
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
