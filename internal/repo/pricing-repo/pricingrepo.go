package pricingrepo

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

// FindActive returns the active ladder for one (stakeholder type, currency)
// pair ordered by min_signups ascending. Validation of the ladder shape is
// the resolver's job.
func (r *Repository) FindActive(ctx context.Context, stakeholderType domain.StakeholderType, currency domain.Currency) ([]domain.PricingBracket, error) {
	query := `
		SELECT id, stakeholder_type, currency, min_signups, max_signups, price, active
		FROM pricing_brackets
		WHERE stakeholder_type = $1 AND currency = $2 AND active = TRUE
		ORDER BY min_signups ASC
	`
	rows, err := r.db.Query(ctx, query, stakeholderType, currency)
	if err != nil {
		zap.L().Error("failed to query pricing brackets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var brackets []domain.PricingBracket
	for rows.Next() {
		var b domain.PricingBracket
		err := rows.Scan(&b.ID, &b.StakeholderType, &b.Currency, &b.MinSignups, &b.MaxSignups, &b.Price, &b.Active)
		if err != nil {
			zap.L().Error("failed to scan pricing bracket", zap.Error(err))
			return nil, err
		}
		brackets = append(brackets, b)
	}
	return brackets, nil
}
