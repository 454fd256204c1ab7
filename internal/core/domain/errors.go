package domain

import "errors"
// Sentinel errors returned by the core services. These are the only errors
// callers ever observe; storage-layer detail never crosses this boundary.
var (
	ErrUnauthenticated = errors.New("you must be logged in to perform this action")
	ErrInvalidPollID   = errors.New("invalid poll id")
	ErrPollNotFound    = errors.New("poll not found")
	ErrInvalidOption   = errors.New("invalid option selected")
	ErrAlreadyVoted    = errors.New("you have already voted on this poll")
	ErrInternal        = errors.New("internal server error")
)

// Validation failures carry the exact rule that was violated. Nonexistence
// and non-ownership both surface as ErrPollNotFound so a caller cannot probe
// for polls it does not own.
var (
	ErrInvalidQuestion     = errors.New("poll question must be between 1 and 255 characters")
	ErrInsufficientOptions = errors.New("please provide at least two options")
	ErrInvalidOptionText   = errors.New("each option must be between 1 and 100 characters")
)
