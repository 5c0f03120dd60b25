package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
	errs "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/domain/port/persistence"
	"github.com/bazaarhq/marketplace/internal/domain/port/security"
)

const (
	maxUsernameLength = 50
	maxEmailLength    = 100
	minPasswordLength = 8
)

// Service implements registration, login and token verification. Every
// failure path returns an explicit error; authentication failures are never
// swallowed into a nil result.
type Service struct {
	userRepo     persistence.UserRepository
	tokenRepo    persistence.TokenRepository
	hasher       security.PasswordHasher
	issuer       security.TokenIssuer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new auth service
func NewService(
	userRepo persistence.UserRepository,
	tokenRepo persistence.TokenRepository,
	hasher security.PasswordHasher,
	issuer security.TokenIssuer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		hasher:       hasher,
		issuer:       issuer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates a new account with a hashed password and a zero balance
func (s *Service) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || len(username) > maxUsernameLength {
		return nil, fmt.Errorf("%w: username must be 1-%d characters", errs.ErrAuthenticationFailed, maxUsernameLength)
	}
	if email == "" || len(email) > maxEmailLength || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", errs.ErrAuthenticationFailed)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", errs.ErrAuthenticationFailed, minPasswordLength)
	}

	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, errs.ErrDuplicateUser
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := entity.NewUser(username, email, hash, s.timeProvider)
	if err != nil {
		return nil, err
	}

	// The unique indexes on username and email are the final authority; a
	// racing registration surfaces as ErrDuplicateUser from the repository.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})

	return user, nil
}

// Login verifies credentials and returns an access token. An unexpired stored
// token is reused; otherwise a new one is issued and persisted, replacing any
// previous row.
func (s *Service) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, "", errs.ErrAuthenticationFailed
		}
		return nil, "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Warn("Login failed: bad password", map[string]any{
			"username": username,
		})
		return nil, "", errs.ErrAuthenticationFailed
	}

	if existing, err := s.tokenRepo.GetValid(ctx, user.ID); err == nil {
		return user, existing.Token, nil
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, "", err
	}

	token, expiresAt, err := s.issuer.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	now := s.timeProvider.Now()
	if err := s.tokenRepo.Replace(ctx, &entity.UserToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return nil, "", err
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
	})

	return user, token, nil
}

// Authenticate verifies a bearer token and returns the caller's user ID. The
// token must carry a valid signature and must match the stored unexpired row.
func (s *Service) Authenticate(ctx context.Context, token string) (uint64, error) {
	userID, err := s.issuer.Parse(token)
	if err != nil {
		return 0, errs.ErrAuthenticationFailed
	}

	stored, err := s.tokenRepo.GetValid(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return 0, errs.ErrAuthenticationFailed
		}
		return 0, err
	}
	if stored.Token != token {
		return 0, errs.ErrAuthenticationFailed
	}

	return userID, nil
}

// CurrentUser resolves the full user record for a verified token
func (s *Service) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	userID, err := s.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}
