package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

const pauseColumns = `id, service_type, is_paused, paused_at, pause_duration_minutes, pause_reason, created_at, updated_at`

func scanPause(row pgx.Row) (model.PauseSettings, error) {
	var p model.PauseSettings
	err := row.Scan(&p.ID, &p.Channel, &p.Paused, &p.PausedAt, &p.DurationMinutes, &p.Reason, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *pauseRepository) Get(ctx context.Context, channel model.Channel) (*model.PauseSettings, error) {
	p, err := scanPause(r.storage.pool.QueryRow(ctx, `SELECT `+pauseColumns+` FROM order_pause_settings WHERE service_type=$1`, string(channel)))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &p, nil
}

// Mutate serializes writers of one channel with a transaction-scoped advisory
// lock, which also covers the first insert when no row exists yet.
func (r *pauseRepository) Mutate(ctx context.Context, channel model.Channel, fn repository.PauseMutation) (*model.PauseSettings, error) {
	const upsert = `INSERT INTO order_pause_settings (service_type, is_paused, paused_at, pause_duration_minutes, pause_reason)
                    VALUES ($1, $2, $3, $4, $5)
                    ON CONFLICT (service_type) DO UPDATE
                    SET is_paused = EXCLUDED.is_paused,
                        paused_at = EXCLUDED.paused_at,
                        pause_duration_minutes = EXCLUDED.pause_duration_minutes,
                        pause_reason = EXCLUDED.pause_reason,
                        updated_at = NOW()
                    RETURNING ` + pauseColumns

	var result *model.PauseSettings
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, string(channel)); err != nil {
			return err
		}

		var current *model.PauseSettings
		existing, err := scanPause(tx.QueryRow(ctx, `SELECT `+pauseColumns+` FROM order_pause_settings WHERE service_type=$1 FOR UPDATE`, string(channel)))
		switch {
		case err == nil:
			current = &existing
		case !errors.Is(err, pgx.ErrNoRows):
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}
		if next == nil {
			result = current
			return nil
		}

		stored, err := scanPause(tx.QueryRow(ctx, upsert, string(channel), next.Paused, next.PausedAt, next.DurationMinutes, next.Reason))
		if err != nil {
			return err
		}
		result = &stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
