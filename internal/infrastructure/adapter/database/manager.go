package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/domain/port/persistence"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/database/migration"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager manages database connections
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	errorMapper  *ErrorMapper
	migrationMgr *migration.MigrationManager
	timeProvider coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		timeProvider: timeProvider,
	}
}

// Connect establishes a database connection with bounded retries
func (m *Manager) Connect() (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	var err error
	var gormDB *gorm.DB

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      m.config.RetryAttempts,
				"delay":   m.config.RetryDelay.String(),
			})
			time.Sleep(m.config.RetryDelay)
		}

		gormDB, err = gorm.Open(postgres.Open(m.config.DSN()), &gorm.Config{
			Logger: NewDatabaseLogger(m.logger, m.config.LogLevel),
			NowFunc: func() time.Time {
				return m.timeProvider.Now()
			},
			PrepareStmt: true,
		})
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", m.config.RetryAttempts, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"host":           m.config.Host,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
	})

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)

	return m.db, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.timeProvider)
}

// GetErrorMapper returns the error mapper
func (m *Manager) GetErrorMapper() *ErrorMapper {
	return m.errorMapper
}

// MigrationManager returns the migration manager
func (m *Manager) MigrationManager() *migration.MigrationManager {
	return m.migrationMgr
}
