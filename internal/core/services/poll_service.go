package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hermanngumbu/alx-polly/internal/core/domain"
	"github.com/hermanngumbu/alx-polly/internal/core/ports"
	"github.com/hermanngumbu/alx-polly/internal/core/validation"
)

type pollService struct {
	repo ports.PollRepository
}

func NewPollService(repo ports.PollRepository) ports.PollService {
	return &pollService{
		repo: repo,
	}
}

func (s *pollService) Create(ctx context.Context, principal uuid.UUID, input ports.CreatePollInput) (*domain.Poll, error) {
	if principal == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	question, options, err := validation.CheckPollInput(input.Question, input.Options)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	poll := &domain.Poll{
		ID:        uuid.New(),
		OwnerID:   principal,
		Question:  question,
		Options:   options,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Save(ctx, poll); err != nil {
		slog.Error("failed to save poll", "error", err)
		return nil, domain.ErrInternal
	}

	return poll, nil
}

func (s *pollService) GetByID(ctx context.Context, principal uuid.UUID, id string) (*domain.Poll, error) {
	if principal == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	pollID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidPollID
	}

	// The owner predicate lives in the query itself. A poll that exists but
	// belongs to someone else is indistinguishable from one that does not
	// exist.
	poll, err := s.repo.GetByIDForOwner(ctx, pollID, principal)
	if err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			return nil, domain.ErrPollNotFound
		}
		slog.Error("failed to get poll", "error", err)
		return nil, domain.ErrInternal
	}

	return poll, nil
}

func (s *pollService) ListMine(ctx context.Context, principal uuid.UUID) ([]*domain.Poll, error) {
	if principal == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	polls, err := s.repo.ListByOwner(ctx, principal)
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		return nil, domain.ErrInternal
	}

	return polls, nil
}

func (s *pollService) Update(ctx context.Context, principal uuid.UUID, id string, input ports.UpdatePollInput) error {
	if principal == uuid.Nil {
		return domain.ErrUnauthenticated
	}

	pollID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrInvalidPollID
	}

	question, options, err := validation.CheckPollInput(input.Question, input.Options)
	if err != nil {
		return err
	}

	affected, err := s.repo.UpdateForOwner(ctx, pollID, principal, question, options)
	if err != nil {
		slog.Error("failed to update poll", "error", err)
		return domain.ErrInternal
	}
	if affected == 0 {
		return domain.ErrPollNotFound
	}

	return nil
}

func (s *pollService) Delete(ctx context.Context, principal uuid.UUID, id string) error {
	if principal == uuid.Nil {
		return domain.ErrUnauthenticated
	}

	pollID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrInvalidPollID
	}

	affected, err := s.repo.DeleteForOwner(ctx, pollID, principal)
	if err != nil {
		slog.Error("failed to delete poll", "error", err)
		return domain.ErrInternal
	}
	if affected == 0 {
		return domain.ErrPollNotFound
	}

	return nil
}
