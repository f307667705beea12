package domain

import (
	"time"
)

type LimitDecision struct {
	Allow      bool
	Limit      int
	Current    int
	Remaining  int
	Window     time.Duration
	ResetTime  time.Time
	RetryAfter time.Duration
}
