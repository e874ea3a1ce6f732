// Package services contains server-side business logic. This file
// implements SessionService, the session manager: registration, login,
// per-request authentication, logout and authenticated-user lookup.
package services

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/webauth/internal/common"
	"github.com/dmitrijs2005/webauth/internal/server/auth"
	"github.com/dmitrijs2005/webauth/internal/server/config"
	"github.com/dmitrijs2005/webauth/internal/server/models"
	"github.com/dmitrijs2005/webauth/internal/server/repositories/repomanager"
)

// SessionService provides the authentication protocol:
// - Register: create accounts after duplicate checks
// - Login: verify credentials and mint a session token
// - Authenticate: resolve a presented token to its account
// - Logout: revoke exactly the presented token
//
// Field validation (formats, lengths) is the transport's precondition
// gate; this service assumes it already ran.
type SessionService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	hasher        *auth.PasswordHasher
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewSessionService constructs a SessionService using repositories and
// server config.
func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *SessionService {
	return &SessionService{
		db:            db,
		repomanager:   m,
		hasher:        auth.NewPasswordHasher(cfg.BcryptCost),
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
	}
}

// Register creates a new account. Terminal outcomes, checked in order:
// ErrorDuplicateEmail, ErrorDuplicateNumber, ErrorPasswordMismatch.
// On success the stored account (with its hash, never the plaintext) is
// returned with an empty token set.
func (s *SessionService) Register(ctx context.Context, name, number, email, password, confirmPassword string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		return nil, common.ErrorDuplicateEmail
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	if _, err := repo.FindByNumber(ctx, number); err == nil {
		return nil, common.ErrorDuplicateNumber
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	if password != confirmPassword {
		return nil, common.ErrorPasswordMismatch
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Number:       number,
		Email:        email,
		PasswordHash: hash,
	}

	created, err := repo.Create(ctx, user)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return created, nil
}

// Login verifies the credentials and, on success, mints a session token
// and appends it to the account's active set. An unknown email and a
// wrong password both yield ErrorInvalidCredentials: callers cannot tell
// which part was wrong.
func (s *SessionService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", common.ErrorInternal
	}

	if err := repo.AppendToken(ctx, user.ID, token); err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// Authenticate resolves a presented token to its account. Failures:
// ErrorMissingToken (nothing presented), ErrInvalidToken (bad signature,
// malformed, or revoked, meaning no longer in the active set), and
// ErrorNotFound (the embedded account ID no longer resolves). The
// transport reports all three uniformly; the distinction is for logs.
func (s *SessionService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, common.ErrorMissingToken
	}

	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	user, err := s.repomanager.Users(s.db).FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if !slices.Contains(user.Tokens, token) {
		return nil, common.ErrInvalidToken
	}

	return user, nil
}

// Logout removes exactly the presented token from the account's active
// set, leaving concurrent sessions untouched. Logging out with a token
// that was already removed is a successful no-op.
func (s *SessionService) Logout(ctx context.Context, user *models.User, token string) error {
	if err := s.repomanager.Users(s.db).RemoveToken(ctx, user.ID, token); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// GetAuthUser re-fetches the current account record by identifier.
func (s *SessionService) GetAuthUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}
