// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"agenda/internal/domain/entity"
)

// ErrContactNotFound is a domain-specific error returned when a contact document is absent.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository defines the standard operations over a user's contact
// subcollection. Every method is scoped by the owning user's uid; callers are
// responsible for resolving the uid from an authenticated session first.
type ContactRepository interface {
	// Create persists a new contact and returns the document ID assigned by the backend.
	// Created and Updated must already be stamped by the caller.
	Create(ctx context.Context, uid string, contact *entity.Contact) (string, error)

	// FindAll retrieves every contact of the user ordered by creation time descending.
	FindAll(ctx context.Context, uid string) ([]entity.Contact, error)

	// FindByID retrieves a single contact, or ErrContactNotFound when absent.
	FindByID(ctx context.Context, uid, id string) (*entity.Contact, error)

	// Update merges the given fields into an existing contact. The Created
	// stamp is never touched.
	Update(ctx context.Context, uid, id string, contact *entity.Contact) error

	// Delete removes the contact. Deleting an absent document is a no-op,
	// matching the backend's own delete semantics.
	Delete(ctx context.Context, uid, id string) error

	// Watch emits the full ordered contact list on every remote change until
	// ctx is cancelled. The first emission is the current state.
	Watch(ctx context.Context, uid string) (<-chan []entity.Contact, error)
}
