package test

import (
	"context"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// OrderRepositoryStub wraps a real repository and lets tests override single calls.
type OrderRepositoryStub struct {
	repository.OrderRepository

	CreateFn              func(context.Context, model.Order, []model.OrderItem) (*model.Order, error)
	UpdateFn              func(context.Context, int64, repository.OrderMutation) (*model.Order, error)
	DeleteCreatedBeforeFn func(context.Context, time.Time) (int, error)
	WindowFn              func(context.Context, time.Time, time.Time) ([]model.OrderWithItems, error)
}

// Create delegates to CreateFn when set.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order, items []model.OrderItem) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order, items)
	}
	return s.OrderRepository.Create(ctx, order, items)
}

// Update delegates to UpdateFn when set.
func (s *OrderRepositoryStub) Update(ctx context.Context, id int64, fn repository.OrderMutation) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, fn)
	}
	return s.OrderRepository.Update(ctx, id, fn)
}

// DeleteCreatedBefore delegates to DeleteCreatedBeforeFn when set.
func (s *OrderRepositoryStub) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	if s.DeleteCreatedBeforeFn != nil {
		return s.DeleteCreatedBeforeFn(ctx, cutoff)
	}
	return s.OrderRepository.DeleteCreatedBefore(ctx, cutoff)
}

// Window delegates to WindowFn when set.
func (s *OrderRepositoryStub) Window(ctx context.Context, start, end time.Time) ([]model.OrderWithItems, error) {
	if s.WindowFn != nil {
		return s.WindowFn(ctx, start, end)
	}
	return s.OrderRepository.Window(ctx, start, end)
}

// PauseRepositoryStub wraps a real repository and counts mutations.
type PauseRepositoryStub struct {
	repository.PauseRepository

	GetErr    error
	MutateErr error
	Mutations int
}

// Get fails with GetErr when set.
func (s *PauseRepositoryStub) Get(ctx context.Context, channel model.Channel) (*model.PauseSettings, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	return s.PauseRepository.Get(ctx, channel)
}

// Mutate fails with MutateErr when set.
func (s *PauseRepositoryStub) Mutate(ctx context.Context, channel model.Channel, fn repository.PauseMutation) (*model.PauseSettings, error) {
	s.Mutations++
	if s.MutateErr != nil {
		return nil, s.MutateErr
	}
	return s.PauseRepository.Mutate(ctx, channel, fn)
}

// UserRepositoryStub wraps a real repository and fails lookups on demand.
type UserRepositoryStub struct {
	repository.UserRepository

	Err error
}

// GetByUsername fails with Err when set.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.UserRepository.GetByUsername(ctx, username)
}
