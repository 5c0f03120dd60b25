package migration

import (
	"errors"
	"strings"

	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.0.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll performs all migrations
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		return err
	}

	currentVersion, err := m.currentVersion()
	if err != nil {
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := m.autoMigrateModels(); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createCheckConstraints(); err != nil {
		m.logger.Error("Failed to create check constraints", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createIndexes(); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.recordVersion(); err != nil {
		return err
	}

	m.logger.Info("Database migrations completed", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// autoMigrateModels creates or updates all application tables
func (m *MigrationManager) autoMigrateModels() error {
	return m.db.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.Transaction{},
		&model.Deposit{},
		&model.UserToken{},
	)
}

// createCheckConstraints adds constraints the database itself enforces even if
// application-level checks are bypassed
func (m *MigrationManager) createCheckConstraints() error {
	constraints := []struct {
		table string
		name  string
		check string
	}{
		{"users", "chk_users_balance_non_negative", "balance_cents >= 0"},
		{"items", "chk_items_price_positive", "price_cents > 0"},
		{"items", "chk_items_quantity_non_negative", "quantity >= 0"},
		{"transactions", "chk_transactions_quantity_positive", "quantity_purchased > 0"},
		{"transactions", "chk_transactions_total_positive", "total_amount_cents > 0"},
		{"deposits", "chk_deposits_amount_positive", "amount_cents > 0"},
	}

	for _, c := range constraints {
		sql := "ALTER TABLE " + c.table + " ADD CONSTRAINT " + c.name + " CHECK (" + c.check + ")"
		if err := m.db.Exec(sql).Error; err != nil {
			// Re-running migrations against an existing schema is fine
			if isDuplicateConstraint(err) {
				continue
			}
			return err
		}
	}

	return nil
}

// createIndexes adds composite indexes for the hot query paths
func (m *MigrationManager) createIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_items_status_listed_at ON items (status, listed_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_items_status_price ON items (status, price_cents DESC)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_buyer_time ON transactions (buyer_user_id, transaction_time DESC)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_seller_time ON transactions (seller_user_id, transaction_time DESC)",
		"CREATE INDEX IF NOT EXISTS idx_deposits_user_time ON deposits (user_id, deposit_time DESC)",
	}

	for _, sql := range indexes {
		if err := m.db.Exec(sql).Error; err != nil {
			return err
		}
	}

	return nil
}

// currentVersion reads the latest applied schema version
func (m *MigrationManager) currentVersion() (string, error) {
	var version model.MigrationVersion
	err := m.db.Order("applied_at DESC").First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return version.Version, nil
}

// recordVersion stores the schema version after a successful migration
func (m *MigrationManager) recordVersion() error {
	return m.db.Create(&model.MigrationVersion{
		Version:   CurrentSchemaVersion,
		AppliedAt: m.timeProvider.Now(),
	}).Error
}

func isDuplicateConstraint(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "already exists") || strings.Contains(err.Error(), "duplicate"))
}
