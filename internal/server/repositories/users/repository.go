// Package users declares the credential-store contract: account records
// plus the per-account set of active session tokens.
package users

import (
	"context"

	"github.com/dmitrijs2005/webauth/internal/server/models"
)

// Repository defines the operations the session subsystem needs from
// persistent account storage.
type Repository interface {
	// Create persists a new account. The caller supplies the ID.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// FindByEmail returns the account registered under email, or a
	// not-found error.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByNumber returns the account registered under the phone number,
	// or a not-found error.
	FindByNumber(ctx context.Context, number string) (*models.User, error)

	// FindByID returns the account with its active token list loaded,
	// oldest token first.
	FindByID(ctx context.Context, id string) (*models.User, error)

	// AppendToken records a freshly issued session token for the account.
	AppendToken(ctx context.Context, userID string, token string) error

	// RemoveToken revokes one session token. Removing a token that is
	// already gone is not an error.
	RemoveToken(ctx context.Context, userID string, token string) error
}
