package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hermanngumbu/alx-polly/internal/core/domain"
	"github.com/hermanngumbu/alx-polly/internal/core/ports"
)

type voteService struct {
	pollRepo ports.PollRepository
	voteRepo ports.VoteRepository
}

func NewVoteService(pollRepo ports.PollRepository, voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		pollRepo: pollRepo,
		voteRepo: voteRepo,
	}
}

func (s *voteService) Vote(ctx context.Context, principal uuid.UUID, input ports.VoteInput) error {
	if principal == uuid.Nil {
		return domain.ErrUnauthenticated
	}

	pollID, err := uuid.Parse(input.PollID)
	if err != nil {
		return domain.ErrInvalidPollID
	}

	// Not owner-scoped: any authenticated user may vote on any poll they
	// have the id of. Only poll mutation is owner-restricted.
	options, err := s.pollRepo.OptionsByID(ctx, pollID)
	if err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			return domain.ErrPollNotFound
		}
		slog.Error("failed to load poll options", "error", err)
		return domain.ErrInternal
	}

	if input.OptionIndex < 0 || input.OptionIndex >= len(options) {
		return domain.ErrInvalidOption
	}

	// Pre-check for a friendlier error. The unique constraint on
	// (poll_id, voter_id) is what actually wins the race between two
	// concurrent votes from the same user.
	hasVoted, err := s.voteRepo.HasVoted(ctx, pollID, principal)
	if err != nil {
		slog.Error("failed to check existing vote", "error", err)
		return domain.ErrInternal
	}
	if hasVoted {
		return domain.ErrAlreadyVoted
	}

	vote := &domain.Vote{
		ID:          uuid.New(),
		PollID:      pollID,
		VoterID:     principal,
		OptionIndex: input.OptionIndex,
		CreatedAt:   time.Now(),
	}

	if err := s.voteRepo.SaveVote(ctx, vote); err != nil {
		if errors.Is(err, domain.ErrAlreadyVoted) {
			return domain.ErrAlreadyVoted
		}
		slog.Error("failed to save vote", "error", err)
		return domain.ErrInternal
	}

	return nil
}

func (s *voteService) Results(ctx context.Context, principal uuid.UUID, id string) (*domain.PollResults, error) {
	if principal == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	pollID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidPollID
	}

	options, err := s.pollRepo.OptionsByID(ctx, pollID)
	if err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			return nil, domain.ErrPollNotFound
		}
		slog.Error("failed to load poll options", "error", err)
		return nil, domain.ErrInternal
	}

	counts, err := s.voteRepo.CountByOption(ctx, pollID)
	if err != nil {
		slog.Error("failed to count votes", "error", err)
		return nil, domain.ErrInternal
	}

	results := &domain.PollResults{
		PollID:  pollID,
		Options: options,
		Counts:  make([]int64, len(options)),
	}
	for idx, count := range counts {
		// Votes cast before an option was edited away keep their row but
		// have no label to attach to; they still count toward the total.
		if idx >= 0 && idx < len(options) {
			results.Counts[idx] = count
		}
		results.Total += count
	}

	return results, nil
}
