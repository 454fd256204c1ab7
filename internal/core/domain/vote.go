package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote records one user's choice of one option index on one poll. The
// (PollID, VoterID) pair is unique at the storage layer; a cast vote is never
// changed or retracted, it only disappears when its poll is deleted.
type Vote struct {
	ID          uuid.UUID `json:"id"`
	PollID      uuid.UUID `json:"poll_id"`
	VoterID     uuid.UUID `json:"voter_id"`
	OptionIndex int       `json:"option_index"`
	CreatedAt   time.Time `json:"created_at"`
}

// PollResults is the per-option tally for a poll. Counts is index-aligned
// with Options and zero-filled for options nobody picked.
type PollResults struct {
	PollID  uuid.UUID `json:"poll_id"`
	Options []string  `json:"options"`
	Counts  []int64   `json:"counts"`
	Total   int64     `json:"total"`
}
