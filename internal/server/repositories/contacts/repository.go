// Package contacts declares the store contract for contact-form
// submissions.
package contacts

import (
	"context"

	"github.com/dmitrijs2005/webauth/internal/server/models"
)

// Repository persists contact-form submissions.
type Repository interface {
	// Create stores one submission. The caller supplies the ID.
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
}
