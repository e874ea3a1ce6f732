package contacts

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/webauth/internal/server/models"
)

// InMemoryRepository keeps submissions in a slice, for tests and DB-less
// operation.
type InMemoryRepository struct {
	mu       sync.Mutex
	contacts []*models.Contact
}

// NewInMemoryRepository constructs an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *contact
	stored.CreatedAt = time.Now()
	r.contacts = append(r.contacts, &stored)

	result := stored
	return &result, nil
}
