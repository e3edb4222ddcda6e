package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/polkiloo/orderdesk/internal/broadcast"
	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	"github.com/polkiloo/orderdesk/internal/pkg/clock"
)

// PauseInput sets the admission state of one channel.
type PauseInput struct {
	Channel         model.Channel
	Paused          bool
	DurationMinutes int
	Reason          string
}

// PauseUseCase controls whether a channel accepts new orders.
type PauseUseCase struct {
	pauses    repository.PauseRepository
	publisher broadcast.Publisher
	clock     clock.Clock
	logger    *slog.Logger

	// locks serialize mutate and publish per channel.
	locks map[model.Channel]*sync.Mutex
}

// NewPauseUseCase constructs PauseUseCase.
func NewPauseUseCase(pauses repository.PauseRepository, publisher broadcast.Publisher, clk clock.Clock, logger *slog.Logger) *PauseUseCase {
	locks := make(map[model.Channel]*sync.Mutex, len(model.Channels))
	for _, ch := range model.Channels {
		locks[ch] = &sync.Mutex{}
	}
	return &PauseUseCase{pauses: pauses, publisher: publisher, clock: clk, logger: logger, locks: locks}
}

func (u *PauseUseCase) lock(channel model.Channel) func() {
	m := u.locks[channel]
	m.Lock()
	return m.Unlock
}

// Set stores the pause state of a channel and announces it.
func (u *PauseUseCase) Set(ctx context.Context, in PauseInput) (model.PauseStatus, error) {
	if _, err := model.ParseChannel(string(in.Channel)); err != nil {
		return model.PauseStatus{}, err
	}
	if in.DurationMinutes < 0 {
		return model.PauseStatus{}, domainErrors.Validation("pauseDurationMinutes", "duration must not be negative")
	}
	if in.DurationMinutes == 0 {
		in.DurationMinutes = model.DefaultPauseMinutes
	}
	in.Reason = strings.TrimSpace(in.Reason)
	if in.Reason == "" {
		in.Reason = model.DefaultPauseReason
	}

	unlock := u.lock(in.Channel)
	defer unlock()

	now := u.clock.Now()
	stored, err := u.pauses.Mutate(ctx, in.Channel, func(current *model.PauseSettings) (*model.PauseSettings, error) {
		next := model.PauseSettings{Channel: in.Channel}
		if current != nil {
			next = current.Clone()
		}
		next.Paused = in.Paused
		next.DurationMinutes = in.DurationMinutes
		next.Reason = in.Reason
		next.PausedAt = nil
		if in.Paused {
			stamp := now
			next.PausedAt = &stamp
		}
		return &next, nil
	})
	if err != nil {
		return model.PauseStatus{}, err
	}

	status := stored.StatusAt(now)
	u.logger.Info("order pause updated",
		slog.String("channel", string(in.Channel)),
		slog.Bool("paused", in.Paused),
		slog.Int("minutes", in.DurationMinutes))
	u.publisher.Broadcast(ctx, broadcast.PauseUpdated(status))
	return status, nil
}

// Check returns the live pause status and clears an elapsed pause on the way.
func (u *PauseUseCase) Check(ctx context.Context, channel model.Channel) (model.PauseStatus, error) {
	if _, err := model.ParseChannel(string(channel)); err != nil {
		return model.PauseStatus{}, err
	}

	now := u.clock.Now()
	current, err := u.pauses.Get(ctx, channel)
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return model.PauseStatus{Channel: channel}, nil
	case err != nil:
		return model.PauseStatus{}, err
	case !current.Elapsed(now):
		return current.StatusAt(now), nil
	}

	unlock := u.lock(channel)
	defer unlock()

	now = u.clock.Now()
	expired := false
	stored, err := u.pauses.Mutate(ctx, channel, func(current *model.PauseSettings) (*model.PauseSettings, error) {
		if current == nil || !current.Elapsed(now) {
			return nil, nil
		}
		next := current.Clone()
		next.Paused = false
		next.PausedAt = nil
		expired = true
		return &next, nil
	})
	if err != nil {
		return model.PauseStatus{}, err
	}
	if stored == nil {
		return model.PauseStatus{Channel: channel}, nil
	}

	status := stored.StatusAt(now)
	if expired {
		u.logger.Info("order pause expired", slog.String("channel", string(channel)))
		u.publisher.Broadcast(ctx, broadcast.PauseUpdated(status))
	}
	return status, nil
}

// Admit rejects new orders while the channel is paused.
func (u *PauseUseCase) Admit(ctx context.Context, channel model.Channel) error {
	status, err := u.Check(ctx, channel)
	if err != nil {
		return err
	}
	if status.Active {
		return &domainErrors.ServiceUnavailableError{
			Channel:   string(channel),
			Reason:    status.Reason,
			Remaining: status.Remaining,
		}
	}
	return nil
}
