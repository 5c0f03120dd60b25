package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
	errs "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/domain/port/persistence"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements the UserRepository port using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:           userModel.ID,
		Username:     userModel.Username,
		Email:        userModel.Email,
		PasswordHash: userModel.PasswordHash,
		Role:         entity.UserRole(userModel.Role),
		CreatedAt:    userModel.CreatedAt,
		UpdatedAt:    userModel.UpdatedAt,
	}
	user.SetBalance(userModel.BalanceCents)
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}

	if r.errorClassifier.IsLockError(err) {
		return errs.ErrConflict
	}

	return fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel), nil
}

// GetByIDForUpdate retrieves a user by ID with a row-level write lock.
// Must run inside a transaction; the lock holds until commit or rollback.
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking user", result.Error, id)
	}

	return r.modelToEntity(&userModel), nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by username", result.Error, 0)
	}

	return r.modelToEntity(&userModel), nil
}

// Create persists a new user and assigns its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		BalanceCents: user.Balance(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, 0)
	}

	user.ID = userModel.ID

	r.logger.Debug("User created", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return nil
}

// UpdateBalance persists the user's balance and updated-at timestamp
func (r *UserRepository) UpdateBalance(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"balance_cents": user.Balance(),
			"updated_at":    user.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating balance", result.Error, user.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

// Search returns users matching the filter
func (r *UserRepository) Search(ctx context.Context, filter persistence.UserSearchFilter) ([]*entity.User, error) {
	query := r.db.WithContext(ctx).Model(&model.User{})

	if filter.Username != "" {
		query = query.Where("username ILIKE ?", "%"+filter.Username+"%")
	}
	if filter.Email != "" {
		query = query.Where("email ILIKE ?", "%"+filter.Email+"%")
	}
	if filter.MinBalanceCents != nil {
		query = query.Where("balance_cents >= ?", *filter.MinBalanceCents)
	}
	if filter.MaxBalanceCents != nil {
		query = query.Where("balance_cents <= ?", *filter.MaxBalanceCents)
	}

	var models []model.User
	if err := query.Order("id").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("searching users", err, 0)
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, r.modelToEntity(&models[i]))
	}
	return users, nil
}
