package services

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/hermanngumbu/alx-polly/internal/core/domain"
)

// fakePollRepo keeps polls in memory and applies the same owner predicates a
// real repository would bake into its queries.
type fakePollRepo struct {
	mu    sync.Mutex
	polls map[uuid.UUID]*domain.Poll

	saveErr error
}

func newFakePollRepo() *fakePollRepo {
	return &fakePollRepo{polls: make(map[uuid.UUID]*domain.Poll)}
}

func (r *fakePollRepo) Save(ctx context.Context, poll *domain.Poll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	cp := *poll
	r.polls[poll.ID] = &cp
	return nil
}

func (r *fakePollRepo) GetByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	poll, ok := r.polls[id]
	if !ok || poll.OwnerID != ownerID {
		return nil, domain.ErrPollNotFound
	}
	cp := *poll
	return &cp, nil
}

func (r *fakePollRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Poll
	for _, poll := range r.polls {
		if poll.OwnerID == ownerID {
			cp := *poll
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakePollRepo) UpdateForOwner(ctx context.Context, id, ownerID uuid.UUID, question string, options []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	poll, ok := r.polls[id]
	if !ok || poll.OwnerID != ownerID {
		return 0, nil
	}
	poll.Question = question
	poll.Options = options
	return 1, nil
}

func (r *fakePollRepo) DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	poll, ok := r.polls[id]
	if !ok || poll.OwnerID != ownerID {
		return 0, nil
	}
	delete(r.polls, id)
	return 1, nil
}

func (r *fakePollRepo) OptionsByID(ctx context.Context, id uuid.UUID) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	poll, ok := r.polls[id]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	return append([]string(nil), poll.Options...), nil
}

// fakeVoteRepo enforces the (poll_id, voter_id) unique constraint the way the
// database does, so duplicate inserts surface as domain.ErrAlreadyVoted even
// when the pre-check is bypassed.
type fakeVoteRepo struct {
	mu    sync.Mutex
	votes map[[2]uuid.UUID]*domain.Vote

	hasVotedErr  error
	skipPreCheck bool
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[[2]uuid.UUID]*domain.Vote)}
}

func (r *fakeVoteRepo) SaveVote(ctx context.Context, vote *domain.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]uuid.UUID{vote.PollID, vote.VoterID}
	if _, exists := r.votes[key]; exists {
		return domain.ErrAlreadyVoted
	}
	cp := *vote
	r.votes[key] = &cp
	return nil
}

func (r *fakeVoteRepo) HasVoted(ctx context.Context, pollID, voterID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hasVotedErr != nil {
		return false, r.hasVotedErr
	}
	if r.skipPreCheck {
		return false, nil
	}
	_, exists := r.votes[[2]uuid.UUID{pollID, voterID}]
	return exists, nil
}

func (r *fakeVoteRepo) CountByOption(ctx context.Context, pollID uuid.UUID) (map[int]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[int]int64)
	for _, vote := range r.votes {
		if vote.PollID == pollID {
			counts[vote.OptionIndex]++
		}
	}
	return counts, nil
}
