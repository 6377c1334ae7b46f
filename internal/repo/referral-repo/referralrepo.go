package referralrepo

import (
	"context"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Create inserts a referral credit keyed by payment intent. The unique
// constraint on payment_intent_id makes replayed confirmation events
// insert nothing; the bool reports whether a row actually landed.
func (r *Repository) Create(ctx context.Context, referral *domain.Referral) (bool, error) {
	query := `
        INSERT INTO referrals (referrer_id, referred_id, payment_intent_id, earnings_inr, earnings_usd, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (payment_intent_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query,
		referral.ReferrerID, referral.ReferredID, referral.PaymentIntentID,
		referral.EarningsINR, referral.EarningsUSD, referral.Status,
	)
	if err != nil {
		zap.L().Error("can't create referral", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindByReferrerID(ctx context.Context, referrerID int) ([]domain.Referral, error) {
	query := `
        SELECT id, referrer_id, referred_id, payment_intent_id, earnings_inr, earnings_usd, status, created_at
        FROM referrals
        WHERE referrer_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		zap.L().Error("can't get referrals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var referrals []domain.Referral
	for rows.Next() {
		var ref domain.Referral
		err := rows.Scan(
			&ref.ID, &ref.ReferrerID, &ref.ReferredID, &ref.PaymentIntentID,
			&ref.EarningsINR, &ref.EarningsUSD, &ref.Status, &ref.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan referral row", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, ref)
	}
	return referrals, nil
}

// Totals aggregates non-held earnings per currency plus the referral count.
func (r *Repository) Totals(ctx context.Context, referrerID int) (count int, inr, usd float64, err error) {
	query := `
        SELECT COUNT(*),
               COALESCE(SUM(earnings_inr) FILTER (WHERE status <> 'held'), 0),
               COALESCE(SUM(earnings_usd) FILTER (WHERE status <> 'held'), 0)
        FROM referrals
        WHERE referrer_id = $1
    `
	if err = r.db.QueryRow(ctx, query, referrerID).Scan(&count, &inr, &usd); err != nil {
		zap.L().Error("can't aggregate referral totals", zap.Error(err))
		return 0, 0, 0, err
	}
	return count, inr, usd, nil
}
