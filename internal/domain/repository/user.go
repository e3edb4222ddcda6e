package repository

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// UserRepository describes persistence operations for staff users.
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash, role string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
