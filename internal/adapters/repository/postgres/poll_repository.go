package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/hermanngumbu/alx-polly/internal/core/domain"
	"github.com/hermanngumbu/alx-polly/internal/core/ports"
)

type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollRepository {
	return &pollRepository{
		db: db,
	}
}

func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	query := `
		INSERT INTO polls (id, owner_id, question, options)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, poll.ID, poll.OwnerID, poll.Question, pq.Array(poll.Options)).
		Scan(&poll.CreatedAt, &poll.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}
	return nil
}

// GetByIDForOwner fetches a single poll. The owner predicate is part of the
// query: a poll owned by someone else scans as no rows, same as a poll that
// does not exist.
func (r *pollRepository) GetByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Poll, error) {
	query := `
		SELECT id, owner_id, question, options, created_at, updated_at
		FROM polls
		WHERE id = $1 AND owner_id = $2
	`

	var poll domain.Poll
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&poll.ID, &poll.OwnerID, &poll.Question, pq.Array(&poll.Options), &poll.CreatedAt, &poll.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}

	return &poll, nil
}

func (r *pollRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Poll, error) {
	query := `
		SELECT id, owner_id, question, options, created_at, updated_at
		FROM polls
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	defer rows.Close()

	var polls []*domain.Poll
	for rows.Next() {
		var poll domain.Poll
		if err := rows.Scan(&poll.ID, &poll.OwnerID, &poll.Question, pq.Array(&poll.Options), &poll.CreatedAt, &poll.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, &poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating polls: %w", err)
	}
	return polls, nil
}

func (r *pollRepository) UpdateForOwner(ctx context.Context, id, ownerID uuid.UUID, question string, options []string) (int64, error) {
	query := `
		UPDATE polls
		SET question = $3, options = $4, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, ownerID, question, pq.Array(options))
	if err != nil {
		return 0, fmt.Errorf("failed to update poll: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected, nil
}

func (r *pollRepository) DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) (int64, error) {
	query := `DELETE FROM polls WHERE id = $1 AND owner_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete poll: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected, nil
}

func (r *pollRepository) OptionsByID(ctx context.Context, id uuid.UUID) ([]string, error) {
	query := `SELECT options FROM polls WHERE id = $1`

	var options []string
	err := r.db.QueryRowContext(ctx, query, id).Scan(pq.Array(&options))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll options: %w", err)
	}
	return options, nil
}
