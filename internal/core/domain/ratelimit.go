package domain

import "time"

// RateLimitDecision is the outcome of one fixed-window counter check.
type RateLimitDecision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}
