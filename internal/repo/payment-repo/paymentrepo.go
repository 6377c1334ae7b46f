package paymentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/internal/pg"
	"go.uber.org/zap"
)

const intentColumns = `id, user_id, purpose, method, status, amount, currency, provider_ref, glitch_flagged_at, glitch_resolved, created_at, verified_at`

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

func scanIntent(row pgx.Row) (*domain.PaymentIntent, error) {
	var p domain.PaymentIntent
	err := row.Scan(
		&p.ID, &p.UserID, &p.Purpose, &p.Method, &p.Status, &p.Amount,
		&p.Currency, &p.ProviderRef, &p.GlitchFlaggedAt, &p.GlitchResolved,
		&p.CreatedAt, &p.VerifiedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Save(ctx context.Context, intent *domain.PaymentIntent) (*domain.PaymentIntent, error) {
	query := `
        INSERT INTO payment_intents (user_id, purpose, method, status, amount, currency, provider_ref)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + intentColumns
	saved, err := scanIntent(r.db.QueryRow(ctx, query,
		intent.UserID, intent.Purpose, intent.Method, intent.Status,
		intent.Amount, intent.Currency, intent.ProviderRef,
	))
	if err != nil {
		zap.L().Error("can't save payment intent", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM payment_intents WHERE id = $1`
	intent, err := scanIntent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		zap.L().Error("can't find payment intent", zap.Error(err))
	}
	return intent, err
}

func (r *Repository) FindByProviderRef(ctx context.Context, providerRef string) (*domain.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM payment_intents WHERE provider_ref = $1`
	intent, err := scanIntent(r.db.QueryRow(ctx, query, providerRef))
	if err != nil {
		zap.L().Error("can't find payment intent by provider ref", zap.Error(err))
	}
	return intent, err
}

// FindPendingByUserID returns the user's most recent open intent, nil when
// there is none.
func (r *Repository) FindPendingByUserID(ctx context.Context, userID int) (*domain.PaymentIntent, error) {
	query := `
        SELECT ` + intentColumns + `
        FROM payment_intents
        WHERE user_id = $1 AND status IN ('pending', 'submitted')
        ORDER BY created_at DESC
        LIMIT 1
    `
	intent, err := scanIntent(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("can't find pending payment intent", zap.Error(err))
	}
	return intent, err
}

// FindResolvedGlitchByUserID returns the user's most recent verified
// intent whose glitch was resolved, nil when there is none. Feeds the
// pending-status view after the open intent is gone.
func (r *Repository) FindResolvedGlitchByUserID(ctx context.Context, userID int) (*domain.PaymentIntent, error) {
	query := `
        SELECT ` + intentColumns + `
        FROM payment_intents
        WHERE user_id = $1 AND status = 'verified' AND glitch_resolved
        ORDER BY verified_at DESC
        LIMIT 1
    `
	intent, err := scanIntent(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("can't find resolved glitch intent", zap.Error(err))
	}
	return intent, err
}

// FindForSettlement lists open intents with a provider reference for the
// background verifier.
func (r *Repository) FindForSettlement(ctx context.Context, limit uint32) ([]domain.PaymentIntent, error) {
	query := `
        SELECT ` + intentColumns + `
        FROM payment_intents
        WHERE status IN ('pending', 'submitted') AND provider_ref <> ''
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't fetch intents for settlement", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var intents []domain.PaymentIntent
	for rows.Next() {
		var p domain.PaymentIntent
		err := rows.Scan(
			&p.ID, &p.UserID, &p.Purpose, &p.Method, &p.Status, &p.Amount,
			&p.Currency, &p.ProviderRef, &p.GlitchFlaggedAt, &p.GlitchResolved,
			&p.CreatedAt, &p.VerifiedAt,
		)
		if err != nil {
			zap.L().Error("can't scan payment intent row", zap.Error(err))
			return nil, err
		}
		intents = append(intents, p)
	}
	return intents, nil
}

// FlagGlitch stamps glitch_flagged_at once; a second flag is a no-op so the
// compensation clock never restarts.
func (r *Repository) FlagGlitch(ctx context.Context, intentID int, flaggedAt time.Time) (bool, error) {
	query := `
        UPDATE payment_intents
        SET glitch_flagged_at = $2
        WHERE id = $1 AND glitch_flagged_at IS NULL
    `
	tag, err := r.db.Exec(ctx, query, intentID, flaggedAt)
	if err != nil {
		zap.L().Error("can't flag payment glitch", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Transition moves an open intent into a terminal status. It returns false
// when the intent was already settled, which makes outcome redelivery a
// no-op for callers.
func (r *Repository) Transition(ctx context.Context, intentID int, to domain.PaymentStatus, at time.Time) (bool, error) {
	query := `
        UPDATE payment_intents
        SET status = $2,
            glitch_resolved = (glitch_flagged_at IS NOT NULL),
            verified_at = CASE WHEN $2 = 'verified' THEN $3 ELSE verified_at END
        WHERE id = $1 AND status IN ('pending', 'submitted')
    `
	tag, err := r.db.Exec(ctx, query, intentID, to, at)
	if err != nil {
		zap.L().Error("can't transition payment intent", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
