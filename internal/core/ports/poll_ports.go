package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/hermanngumbu/alx-polly/internal/core/domain"
)

// PollRepository persists polls. Single-poll reads and all mutations are
// owner-scoped: the owner id is part of the query predicate itself, never
// checked in application code after the fact. Mutations report how many rows
// matched so the service can tell "done" from "missing or not yours".
type PollRepository interface {
	Save(ctx context.Context, poll *domain.Poll) error
	GetByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Poll, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Poll, error)
	UpdateForOwner(ctx context.Context, id, ownerID uuid.UUID, question string, options []string) (int64, error)
	DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) (int64, error)

	// OptionsByID is deliberately not owner-scoped: voting and results are
	// open to any authenticated user who knows the poll id.
	OptionsByID(ctx context.Context, id uuid.UUID) ([]string, error)
}

type CreatePollInput struct {
	Question string
	Options  []string
}

type UpdatePollInput struct {
	Question string
	Options  []string
}

// PollService is the owner-facing poll API. Every method takes the acting
// principal explicitly; uuid.Nil means unauthenticated and is rejected before
// any repository call.
type PollService interface {
	Create(ctx context.Context, principal uuid.UUID, input CreatePollInput) (*domain.Poll, error)
	GetByID(ctx context.Context, principal uuid.UUID, id string) (*domain.Poll, error)
	ListMine(ctx context.Context, principal uuid.UUID) ([]*domain.Poll, error)
	Update(ctx context.Context, principal uuid.UUID, id string, input UpdatePollInput) error
	Delete(ctx context.Context, principal uuid.UUID, id string) error
}
