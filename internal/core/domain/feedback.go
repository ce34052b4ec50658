package domain

import (
	"errors"
	"time"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

// ErrNotOwner is returned when the acting identity does not own the
// resource it is trying to read or mutate.
var ErrNotOwner = errors.New("not the resource owner")

// Feedback is a titled note belonging to exactly one user. IDs are
// assigned by the store and increase monotonically.
type Feedback struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
