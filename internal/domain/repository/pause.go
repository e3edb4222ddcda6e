package repository

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// PauseMutation receives the current record (nil when absent) and returns the
// record to store. Returning nil with no error leaves storage unchanged.
type PauseMutation func(current *model.PauseSettings) (*model.PauseSettings, error)

// PauseRepository describes persistence of per-channel admission records.
type PauseRepository interface {
	Get(ctx context.Context, channel model.Channel) (*model.PauseSettings, error)
	// Mutate runs fn and upserts its result atomically per channel. It returns
	// the stored record, or the current one when fn made no change.
	Mutate(ctx context.Context, channel model.Channel, fn PauseMutation) (*model.PauseSettings, error)
}
