package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/webauth/internal/common"
	"github.com/dmitrijs2005/webauth/internal/server/models"
	"github.com/dmitrijs2005/webauth/internal/server/repositories/repomanager"
)

// ContactService stores contact-form submissions. No auth logic: the
// transport validates the fields, this service persists them.
type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewContactService constructs a ContactService.
func NewContactService(db *sql.DB, m repomanager.RepositoryManager) *ContactService {
	return &ContactService{db: db, repomanager: m}
}

// Submit stores one submission and returns the persisted record.
func (s *ContactService) Submit(ctx context.Context, name, number, email, message string) (*models.Contact, error) {
	contact := &models.Contact{
		ID:      uuid.NewString(),
		Name:    name,
		Number:  number,
		Email:   email,
		Message: message,
	}

	created, err := s.repomanager.Contacts(s.db).Create(ctx, contact)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return created, nil
}
