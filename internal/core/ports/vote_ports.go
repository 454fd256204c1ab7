package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/hermanngumbu/alx-polly/internal/core/domain"
)

// VoteRepository persists votes. SaveVote must map a storage-level violation
// of the (poll_id, voter_id) unique constraint to domain.ErrAlreadyVoted;
// that constraint, not HasVoted, is what makes concurrent duplicate votes
// impossible.
type VoteRepository interface {
	SaveVote(ctx context.Context, vote *domain.Vote) error
	HasVoted(ctx context.Context, pollID, voterID uuid.UUID) (bool, error)
	CountByOption(ctx context.Context, pollID uuid.UUID) (map[int]int64, error)
}

type VoteInput struct {
	PollID      string
	OptionIndex int
}

type VoteService interface {
	Vote(ctx context.Context, principal uuid.UUID, input VoteInput) error
	Results(ctx context.Context, principal uuid.UUID, pollID string) (*domain.PollResults, error)
}
