// Package common defines shared constants and sentinel errors used across
// the journal, goal and report layers of Memento. Callers should use
// errors.Is to match these values.
package common

import "errors"

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// report server access token.
const AccessTokenHeaderName = "access_token"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Journal record validation.
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrUnknownEmotion = errors.New("unknown emotion")
	ErrInvalidDay     = errors.New("invalid day")

	// Monthly goals.
	ErrGoalExists   = errors.New("goal for this month already exists")
	ErrGoalListFull = errors.New("goal list is full")
	ErrEmptyTitle   = errors.New("title must not be empty")
	ErrInvalidGoal  = errors.New("invalid goal")

	// Settings and backups.
	ErrInvalidSettings   = errors.New("invalid settings")
	ErrUnsupportedFormat = errors.New("unsupported format")
)
