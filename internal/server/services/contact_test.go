package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/webauth/internal/server/repositories/repomanager"
)

func TestContactSubmit(t *testing.T) {
	s := NewContactService(nil, repomanager.NewInMemoryRepositoryManager())

	c, err := s.Submit(context.Background(), "A", "9999999999", "a@x.com", "hello")
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if c.ID == "" {
		t.Fatalf("submission must get an identifier")
	}
	if c.Message != "hello" {
		t.Fatalf("unexpected message: %q", c.Message)
	}
}

func TestContactSubmit_IndependentRecords(t *testing.T) {
	s := NewContactService(nil, repomanager.NewInMemoryRepositoryManager())

	c1, err := s.Submit(context.Background(), "A", "9999999999", "a@x.com", "first")
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	c2, err := s.Submit(context.Background(), "A", "9999999999", "a@x.com", "second")
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if c1.ID == c2.ID {
		t.Fatalf("two submissions must get distinct identifiers")
	}
}
