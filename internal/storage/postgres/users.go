package postgres

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

const userColumns = `id, username, password_hash, role, created_at`

func (r *userRepository) Create(ctx context.Context, username, passwordHash, role string) (*model.User, error) {
	const query = `INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	u := model.User{Username: username, PasswordHash: passwordHash, Role: role}
	if err := r.storage.pool.QueryRow(ctx, query, username, passwordHash, role).Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, mapUnique(err)
	}
	return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username=$1`, username)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &u, nil
}
