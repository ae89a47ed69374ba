package usecase

import (
	"context"

	"agenda/internal/domain/entity"
)

// --- Input DTOs ---

// NewContactInput defines the data required to create a contact.
type NewContactInput struct {
	Nombre   string `json:"nombre" validate:"required,min=2"`
	Telefono int64  `json:"telefono" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Action   string `json:"action"`
}

// UpdateContactInput carries the editable fields of a contact. Zero-valued
// fields are still written; the edit form always submits the full record.
type UpdateContactInput struct {
	Nombre   string `json:"nombre" validate:"required,min=2"`
	Telefono int64  `json:"telefono" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Action   string `json:"action"`
}

// ListContactsQuery captures the three independent view transforms of the
// contact grid: free-text filter, column sort and page windowing.
type ListContactsQuery struct {
	Filter   string `query:"q"`
	SortBy   string `query:"sort" validate:"omitempty,oneof=nombre telefono email action created updated"`
	SortDir  string `query:"dir" validate:"omitempty,oneof=asc desc"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	PageSize int    `query:"pageSize" validate:"omitempty,min=1,max=100"`
}

// --- Output DTOs ---

// ContactListOutput is one page of the filtered, sorted contact list.
type ContactListOutput struct {
	Contacts []entity.Contact `json:"contacts"`
	Total    int              `json:"total"` // Filtered count before windowing, for the paginator.
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

// ContactUsecase defines contact list operations. Every method requires an
// authenticated uid and fails with NotAuthenticated otherwise.
type ContactUsecase interface {
	NewContact(ctx context.Context, uid string, input *NewContactInput) (*entity.Contact, error)
	ListContacts(ctx context.Context, uid string, query *ListContactsQuery) (*ContactListOutput, error)
	WatchContacts(ctx context.Context, uid string) (<-chan []entity.Contact, error)
	GetContactByID(ctx context.Context, uid, id string) (*entity.Contact, error)
	UpdateContact(ctx context.Context, uid, id string, input *UpdateContactInput) (*entity.Contact, error)
	DeleteContact(ctx context.Context, uid, id string) error
}
