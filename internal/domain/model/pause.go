package model

import (
	"math"
	"time"
)

const (
	DefaultPauseMinutes = 30
	DefaultPauseReason  = "Rush hours"
)

// PauseSettings is the single admission-control record of a channel.
type PauseSettings struct {
	ID              int64
	Channel         Channel
	Paused          bool
	PausedAt        *time.Time
	DurationMinutes int
	Reason          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Clone returns a copy that does not share the pausedAt pointer.
func (p PauseSettings) Clone() PauseSettings {
	c := p
	c.PausedAt = clonePtr(p.PausedAt)
	return c
}

// Duration returns the configured pause length.
func (p PauseSettings) Duration() time.Duration {
	return time.Duration(p.DurationMinutes) * time.Minute
}

// Remaining returns how long the pause still lasts at now. A zero or negative value
// means the pause has elapsed (or was never armed).
func (p PauseSettings) Remaining(now time.Time) time.Duration {
	if !p.Paused || p.PausedAt == nil {
		return 0
	}
	return p.PausedAt.Add(p.Duration()).Sub(now)
}

// Elapsed reports whether a flagged pause has run its course at now.
func (p PauseSettings) Elapsed(now time.Time) bool {
	return p.Paused && p.Remaining(now) <= 0
}

// PauseStatus is the live view of a channel's admission state.
type PauseStatus struct {
	Channel          Channel
	Active           bool
	PausedAt         *time.Time
	DurationMinutes  int
	Reason           string
	RemainingMinutes int
	Remaining        time.Duration
}

// StatusAt evaluates the live admission state of the record at now.
func (p PauseSettings) StatusAt(now time.Time) PauseStatus {
	remaining := p.Remaining(now)
	if remaining <= 0 {
		return PauseStatus{Channel: p.Channel}
	}
	return PauseStatus{
		Channel:          p.Channel,
		Active:           true,
		PausedAt:         clonePtr(p.PausedAt),
		DurationMinutes:  p.DurationMinutes,
		Reason:           p.Reason,
		RemainingMinutes: int(math.Ceil(remaining.Minutes())),
		Remaining:        remaining,
	}
}
