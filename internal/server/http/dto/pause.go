package dto

import (
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// PauseRequest sets the admission state of a channel.
type PauseRequest struct {
	ServiceType          string `json:"serviceType"`
	IsPaused             bool   `json:"isPaused"`
	PauseDurationMinutes *int   `json:"pauseDurationMinutes"`
	PauseReason          string `json:"pauseReason"`
}

// PauseResponse is the live admission state of a channel.
type PauseResponse struct {
	ServiceType          string     `json:"serviceType"`
	IsPaused             bool       `json:"isPaused"`
	PausedAt             *time.Time `json:"pausedAt,omitempty"`
	PauseDurationMinutes int        `json:"pauseDurationMinutes,omitempty"`
	PauseReason          string     `json:"pauseReason,omitempty"`
	RemainingMinutes     int        `json:"remainingMinutes,omitempty"`
	RemainingSeconds     int        `json:"remainingSeconds,omitempty"`
}

// NewPauseResponse converts a live pause status.
func NewPauseResponse(s model.PauseStatus) PauseResponse {
	if !s.Active {
		return PauseResponse{ServiceType: string(s.Channel)}
	}
	return PauseResponse{
		ServiceType:          string(s.Channel),
		IsPaused:             true,
		PausedAt:             s.PausedAt,
		PauseDurationMinutes: s.DurationMinutes,
		PauseReason:          s.Reason,
		RemainingMinutes:     s.RemainingMinutes,
		RemainingSeconds:     int(s.Remaining.Round(time.Second) / time.Second),
	}
}
