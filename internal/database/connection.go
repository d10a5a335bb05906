package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel aligns the package logger with the application log level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

const defaultMaxRetries = 5

// retryDelay is the base wait between connection attempts, doubled on every retry
var retryDelay = 1 * time.Second

// InitDatabase initializes the database connection based on the provided configuration
// It supports both PostgreSQL and SQLite drivers with automatic retry logic and connection pooling
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	driver := normalizeDriver(cfg.Driver)

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": maxRetries,
		}).Info("Attempting database connection")

		switch driver {
		case "postgres":
			if cfg.URI != "" {
				log.WithField("dsn", maskedURI(cfg.URI)).Debug("Connecting to PostgreSQL")
			} else {
				log.WithField("dsn_host", cfg.Host).Debug("Connecting to PostgreSQL")
			}
			db, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)

		case "sqlite":
			log.WithField("db_path", cfg.DSN()).Debug("Connecting to SQLite")
			db, err = gorm.Open(sqlite.Open(cfg.DSN()), gormConfig)

		default:
			return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
		}

		if err == nil {
			err = verifyConnection(db, driver)
			if err == nil {
				log.WithFields(logrus.Fields{
					"db_driver": driver,
					"attempt":   attempt,
				}).Info("Database initialized successfully")
				return db, nil
			}
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		// Don't wait after the last attempt
		if attempt < maxRetries {
			delay := backoff(attempt)
			log.WithField("delay", delay).Info("Retrying database connection")
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// verifyConnection pings the database and configures the pool
func verifyConnection(db *gorm.DB, driver string) error {
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("Failed to get database instance")
		return err
	}
	if err := sqlDB.Ping(); err != nil {
		log.WithError(err).Error("Failed to ping database")
		return err
	}

	log.Info("Database connection successful, configuring connection pool")
	configureConnectionPool(sqlDB, driver)

	if driver == "sqlite" {
		// Enforced per connection, the pool holds exactly one
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	}
	return nil
}

// backoff returns the exponential delay before the given retry, capped at 16 times the base
func backoff(attempt int) time.Duration {
	shift := attempt - 1
	if shift > 4 {
		shift = 4
	}
	return retryDelay << shift
}

// configureConnectionPool sets up connection pool parameters for optimal performance
func configureConnectionPool(sqlDB *sql.DB, driver string) {
	if driver == "sqlite" {
		// SQLite serializes writers, and an in-memory database lives only
		// as long as its single connection
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)

		log.WithField("max_open_conns", 1).Debug("Connection pool configured")
		return
	}

	// SetMaxOpenConns sets the maximum number of open connections to the database
	sqlDB.SetMaxOpenConns(25)

	// SetMaxIdleConns sets the maximum number of connections in the idle connection pool
	sqlDB.SetMaxIdleConns(5)

	// SetConnMaxLifetime sets the maximum amount of time a connection may be reused
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.WithFields(logrus.Fields{
		"max_open_conns":    25,
		"max_idle_conns":    5,
		"conn_max_lifetime": "5m",
	}).Debug("Connection pool configured")
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
