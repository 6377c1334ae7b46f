package signuprepo

import (
	"context"
	"time"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Increment bumps the counter with a single atomic UPDATE and records the
// event for the trailing-rate estimate. Concurrent registrations can never
// observe or produce the same count.
func (r *Repository) Increment(ctx context.Context, stakeholderType domain.StakeholderType) (int, error) {
	var count int
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
			UPDATE signup_counters
			SET signup_count = signup_count + 1
			WHERE stakeholder_type = $1
			RETURNING signup_count
		`
		row := r.db.QueryRow(ctx, query, stakeholderType)
		if err := row.Scan(&count); err != nil {
			zap.L().Error("failed to increment signup counter", zap.Error(err))
			return err
		}

		eventQuery := `
			INSERT INTO signup_events (stakeholder_type, created_at)
			VALUES ($1, $2)
		`
		if _, err := r.db.Exec(ctx, eventQuery, stakeholderType, time.Now()); err != nil {
			zap.L().Error("failed to record signup event", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) Count(ctx context.Context, stakeholderType domain.StakeholderType) (int, error) {
	query := `
		SELECT signup_count
		FROM signup_counters
		WHERE stakeholder_type = $1
	`
	var count int
	if err := r.db.QueryRow(ctx, query, stakeholderType).Scan(&count); err != nil {
		zap.L().Error("failed to get signup count", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// CountSince returns how many registrations landed after the given moment.
func (r *Repository) CountSince(ctx context.Context, stakeholderType domain.StakeholderType, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM signup_events
		WHERE stakeholder_type = $1 AND created_at >= $2
	`
	var count int
	if err := r.db.QueryRow(ctx, query, stakeholderType, since).Scan(&count); err != nil {
		zap.L().Error("failed to count signup events", zap.Error(err))
		return 0, err
	}
	return count, nil
}
