package model

import "time"

// Attempt is the outcome of checking one submitted answer.
type Attempt struct {
	ID          string    `json:"id"`
	ProblemSlug string    `json:"problem_slug"`
	Correct     bool      `json:"correct"`
	CheckedAt   time.Time `json:"checked_at"`
}
