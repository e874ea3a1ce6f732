package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/webauth/internal/dbx"
	"github.com/dmitrijs2005/webauth/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/webauth/internal/server/repositories/users"
)

// InMemoryRepositoryManager vends shared in-memory repositories. Unlike
// the Postgres manager it ignores the DBTX argument: there is one backing
// store per manager instance.
type InMemoryRepositoryManager struct {
	users    *users.InMemoryRepository
	contacts *contacts.InMemoryRepository
}

// NewInMemoryRepositoryManager constructs a manager with fresh empty
// stores.
func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:    users.NewInMemoryRepository(),
		contacts: contacts.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Contacts(db dbx.DBTX) contacts.Repository {
	return m.contacts
}
