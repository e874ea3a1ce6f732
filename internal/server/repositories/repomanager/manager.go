package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/webauth/internal/dbx"
	"github.com/dmitrijs2005/webauth/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/webauth/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX (a *sql.DB or a
// transaction) and exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Contacts(db dbx.DBTX) contacts.Repository
}
