package domain

import (
	"time"

	"github.com/google/uuid"
)

// Poll is a question with an ordered set of options, owned by the user that
// created it. OwnerID never changes after creation; votes reference options
// by index into Options.
type Poll struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Question  string    `json:"question"`
	Options   []string  `json:"options"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
