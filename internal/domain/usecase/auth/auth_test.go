package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
	errs "github.com/bazaarhq/marketplace/internal/domain/error"
	"github.com/bazaarhq/marketplace/mocks/port/core"
	"github.com/bazaarhq/marketplace/mocks/port/persistence"
	"github.com/bazaarhq/marketplace/mocks/port/security"
)

func TestService_Register(t *testing.T) {
	// Define fixed time for consistent testing
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	// Common test variables
	ctx := context.Background()

	t.Run("should register a user with a hashed password and zero balance", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenRepo := new(persistence.MockTokenRepository)
		mockHasher := new(security.MockPasswordHasher)
		mockIssuer := new(security.MockTokenIssuer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockUserRepo.On("GetByUsername", ctx, "alice").Return(nil, errs.ErrUserNotFound)
		mockHasher.On("Hash", "s3cret-password").Return("hashed-password", nil)
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
		mockLogger.On("Info", "User registered", mock.AnythingOfType("map[string]interface {}")).Return()

		service := NewService(mockUserRepo, mockTokenRepo, mockHasher, mockIssuer, mockTimeProvider, mockLogger)

		// Act
		user, err := service.Register(ctx, "alice", "alice@example.com", "s3cret-password")

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "hashed-password", user.PasswordHash)
		assert.Equal(t, int64(0), user.Balance())
		assert.Equal(t, entity.RoleUser, user.Role)

		mockUserRepo.AssertExpectations(t)
		mockHasher.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should reject duplicate username", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenRepo := new(persistence.MockTokenRepository)
		mockHasher := new(security.MockPasswordHasher)
		mockIssuer := new(security.MockTokenIssuer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		existing := &entity.User{ID: 1, Username: "alice"}
		mockUserRepo.On("GetByUsername", ctx, "alice").Return(existing, nil)

		service := NewService(mockUserRepo, mockTokenRepo, mockHasher, mockIssuer, mockTimeProvider, mockLogger)

		// Act
		user, err := service.Register(ctx, "alice", "alice@example.com", "s3cret-password")

		// Assert
		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrDuplicateUser)

		mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("should surface a racing duplicate from the repository", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenRepo := new(persistence.MockTokenRepository)
		mockHasher := new(security.MockPasswordHasher)
		mockIssuer := new(security.MockTokenIssuer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)
		mockUserRepo.On("GetByUsername", ctx, "alice").Return(nil, errs.ErrUserNotFound)
		mockHasher.On("Hash", "s3cret-password").Return("hashed-password", nil)
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(errs.ErrDuplicateUser)

		service := NewService(mockUserRepo, mockTokenRepo, mockHasher, mockIssuer, mockTimeProvider, mockLogger)

		// Act
		user, err := service.Register(ctx, "alice", "alice@example.com", "s3cret-password")

		// Assert
		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrDuplicateUser)

		mockUserRepo.AssertExpectations(t)
	})

	t.Run("should reject invalid input", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenRepo := new(persistence.MockTokenRepository)
		mockHasher := new(security.MockPasswordHasher)
		mockIssuer := new(security.MockTokenIssuer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		service := NewService(mockUserRepo, mockTokenRepo, mockHasher, mockIssuer, mockTimeProvider, mockLogger)

		testCases := []struct {
			name     string
			username string
			email    string
			password string
		}{
			{"empty username", "", "alice@example.com", "s3cret-password"},
			{"email without @", "alice", "not-an-email", "s3cret-password"},
			{"empty email", "alice", "", "s3cret-password"},
			{"short password", "alice", "alice@example.com", "short"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				// Act
				user, err := service.Register(ctx, tc.username, tc.email, tc.password)

				// Assert
				assert.Nil(t, user)
				assert.ErrorIs(t, err, errs.ErrAuthenticationFailed)
			})
		}

		mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestService_Login(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenExpiry := fixedTime.Add(time.Hour)

	ctx := context.Background()
	userID := uint64(123)

	newStoredUser := func() *entity.User {
		return &entity.User{
			ID:           userID,
			Username:     "alice",
			PasswordHash: "hashed-password",
		}
	}

	t.Run("should issue and persist a token on first login", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenRepo := new(persistence.MockTokenRepository)
		mockHasher := new(security.MockPasswordHasher)
		mockIssuer := new(security.MockTokenIssuer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		user := newStoredUser()

		mockTimeProvider.On("Now").Return(fixedTime)
		mockUserRepo.On("GetByUsername", ctx, "alice").Return(user, nil)
		mockHasher.On("Verify", "s3cret-password", "hashed-password").Return(true)
		mockTokenRepo.On("GetValid", ctx, userID).Return(nil, errs.ErrNotFound)
		mockIssuer.On("Issue", userID, "alice").Return("signed-token", tokenExpiry, nil)
		mockTokenRepo.On("Replace", ctx, mock.AnythingOfType("*entity.UserToken")).Return(nil)
		mockLogger.On("Info", "User logged in", mock.AnythingOfType("map[string]interface {}")).Return()

		service := NewService(mockUserRepo, mockTokenRepo, mockHasher, mockIssuer, mockTimeProvider, mockLogger)

		// Act
		loggedIn, token, err := service.Login(ctx, "alice", "s3cret-password")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, user, loggedIn)
		assert.Equal(t, "signed-token", token)

		mockUserRepo.AssertExpectations(t)
		mockTokenRepo.AssertExpectations(t)
		mockHasher.AssertExpectations(t)
		mockIssuer.AssertExpectations(t)
	})

	t.Run("should reuse an unexpired stored token", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenRepo := new(persistence.MockTokenRepository)
		mockHasher := new(security.MockPasswordHasher)
		mockIssuer := new(security.MockTokenIssuer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		user := newStoredUser()
		stored := &entity.UserToken{UserID: userID, Token: "existing-token", ExpiresAt: tokenExpiry}

		mockUserRepo.On("GetByUsername", ctx, "alice").Return(user, nil)
		mockHasher.On("Verify", "s3cret-password", "hashed-password").Return(true)
		mockTokenRepo.On("GetValid", ctx, userID).Return(stored, nil)

		service := NewService(mockUserRepo, mockTokenRepo, mockHasher, mockIssuer, mockTimeProvider, mockLogger)

		// Act
		_, token, err := service.Login(ctx, "alice", "s3cret-password")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "existing-token", token)

		mockIssuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
		mockTokenRepo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
	})

	t.Run("should fail with wrong password", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenRepo := new(persistence.MockTokenRepository)
		mockHasher := new(security.MockPasswordHasher)
		mockIssuer := new(security.MockTokenIssuer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		user := newStoredUser()

		mockUserRepo.On("GetByUsername", ctx, "alice").Return(user, nil)
		mockHasher.On("Verify", "wrong-password", "hashed-password").Return(false)
		mockLogger.On("Warn", "Login failed: bad password", mock.AnythingOfType("map[string]interface {}")).Return()

		service := NewService(mockUserRepo, mockTokenRepo, mockHasher, mockIssuer, mockTimeProvider, mockLogger)

		// Act
		loggedIn, token, err := service.Login(ctx, "alice", "wrong-password")

		// Assert
		assert.Nil(t, loggedIn)
		assert.Empty(t, token)
		assert.ErrorIs(t, err, errs.ErrAuthenticationFailed)

		mockLogger.AssertExpectations(t)
	})

	t.Run("should not reveal whether the user exists", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenRepo := new(persistence.MockTokenRepository)
		mockHasher := new(security.MockPasswordHasher)
		mockIssuer := new(security.MockTokenIssuer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockUserRepo.On("GetByUsername", ctx, "ghost").Return(nil, errs.ErrUserNotFound)

		service := NewService(mockUserRepo, mockTokenRepo, mockHasher, mockIssuer, mockTimeProvider, mockLogger)

		// Act
		loggedIn, token, err := service.Login(ctx, "ghost", "whatever-password")

		// Assert: same failure as a bad password
		assert.Nil(t, loggedIn)
		assert.Empty(t, token)
		assert.ErrorIs(t, err, errs.ErrAuthenticationFailed)
	})
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()
	userID := uint64(123)

	t.Run("should accept a token matching the stored row", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenRepo := new(persistence.MockTokenRepository)
		mockHasher := new(security.MockPasswordHasher)
		mockIssuer := new(security.MockTokenIssuer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		stored := &entity.UserToken{UserID: userID, Token: "signed-token"}

		mockIssuer.On("Parse", "signed-token").Return(userID, nil)
		mockTokenRepo.On("GetValid", ctx, userID).Return(stored, nil)

		service := NewService(mockUserRepo, mockTokenRepo, mockHasher, mockIssuer, mockTimeProvider, mockLogger)

		// Act
		gotID, err := service.Authenticate(ctx, "signed-token")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, userID, gotID)

		mockIssuer.AssertExpectations(t)
		mockTokenRepo.AssertExpectations(t)
	})

	t.Run("should reject a token with an invalid signature", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenRepo := new(persistence.MockTokenRepository)
		mockHasher := new(security.MockPasswordHasher)
		mockIssuer := new(security.MockTokenIssuer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockIssuer.On("Parse", "tampered-token").Return(uint64(0), errors.New("signature is invalid"))

		service := NewService(mockUserRepo, mockTokenRepo, mockHasher, mockIssuer, mockTimeProvider, mockLogger)

		// Act
		gotID, err := service.Authenticate(ctx, "tampered-token")

		// Assert
		assert.Zero(t, gotID)
		assert.ErrorIs(t, err, errs.ErrAuthenticationFailed)

		mockTokenRepo.AssertNotCalled(t, "GetValid", mock.Anything, mock.Anything)
	})

	t.Run("should reject a valid signature with no stored row", func(t *testing.T) {
		// Arrange: the token was superseded by a later login
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenRepo := new(persistence.MockTokenRepository)
		mockHasher := new(security.MockPasswordHasher)
		mockIssuer := new(security.MockTokenIssuer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockIssuer.On("Parse", "old-token").Return(userID, nil)
		mockTokenRepo.On("GetValid", ctx, userID).Return(nil, errs.ErrNotFound)

		service := NewService(mockUserRepo, mockTokenRepo, mockHasher, mockIssuer, mockTimeProvider, mockLogger)

		// Act
		gotID, err := service.Authenticate(ctx, "old-token")

		// Assert
		assert.Zero(t, gotID)
		assert.ErrorIs(t, err, errs.ErrAuthenticationFailed)
	})

	t.Run("should reject a token that differs from the stored one", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenRepo := new(persistence.MockTokenRepository)
		mockHasher := new(security.MockPasswordHasher)
		mockIssuer := new(security.MockTokenIssuer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		stored := &entity.UserToken{UserID: userID, Token: "current-token"}

		mockIssuer.On("Parse", "stale-token").Return(userID, nil)
		mockTokenRepo.On("GetValid", ctx, userID).Return(stored, nil)

		service := NewService(mockUserRepo, mockTokenRepo, mockHasher, mockIssuer, mockTimeProvider, mockLogger)

		// Act
		gotID, err := service.Authenticate(ctx, "stale-token")

		// Assert
		assert.Zero(t, gotID)
		assert.ErrorIs(t, err, errs.ErrAuthenticationFailed)
	})
}

func TestService_CurrentUser(t *testing.T) {
	ctx := context.Background()
	userID := uint64(123)

	t.Run("should resolve the full user for a verified token", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(persistence.MockUserRepository)
		mockTokenRepo := new(persistence.MockTokenRepository)
		mockHasher := new(security.MockPasswordHasher)
		mockIssuer := new(security.MockTokenIssuer)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		user := &entity.User{ID: userID, Username: "alice"}
		stored := &entity.UserToken{UserID: userID, Token: "signed-token"}

		mockIssuer.On("Parse", "signed-token").Return(userID, nil)
		mockTokenRepo.On("GetValid", ctx, userID).Return(stored, nil)
		mockUserRepo.On("GetByID", ctx, userID).Return(user, nil)

		service := NewService(mockUserRepo, mockTokenRepo, mockHasher, mockIssuer, mockTimeProvider, mockLogger)

		// Act
		got, err := service.CurrentUser(ctx, "signed-token")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, user, got)

		mockUserRepo.AssertExpectations(t)
	})
}
