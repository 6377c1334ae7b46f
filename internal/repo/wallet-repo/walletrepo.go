package walletrepo

import (
	"context"
	"time"

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

func (r *Repository) CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) (*domain.WalletTransaction, error) {
	query := `
        INSERT INTO wallet_transactions (user_id, type, amount, currency, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, user_id, type, amount, currency, status, created_at
    `
	row := r.db.QueryRow(ctx, query, tx.UserID, tx.Type, tx.Amount, tx.Currency, tx.Status)
	var saved domain.WalletTransaction
	err := row.Scan(&saved.ID, &saved.UserID, &saved.Type, &saved.Amount, &saved.Currency, &saved.Status, &saved.CreatedAt)
	if err != nil {
		zap.L().Error("can't create wallet transaction", zap.Error(err))
		return nil, err
	}
	return &saved, nil
}

// Balances sums the ledger per currency. Balances are always recomputed
// from transactions, never stored in a mutable column; withdrawal entries
// reduce the available sum.
func (r *Repository) Balances(ctx context.Context, userID int) ([]domain.WalletBalance, error) {
	query := `
        SELECT currency,
               COALESCE(SUM(amount) FILTER (WHERE status = 'available'), 0)
             - COALESCE(SUM(amount) FILTER (WHERE status = 'withdrawn'), 0) AS available,
               COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0) AS pending
        FROM wallet_transactions
        WHERE user_id = $1
        GROUP BY currency
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get wallet balances", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var balances []domain.WalletBalance
	for rows.Next() {
		var b domain.WalletBalance
		if err := rows.Scan(&b.Currency, &b.Available, &b.Pending); err != nil {
			zap.L().Error("can't scan wallet balance row", zap.Error(err))
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.WalletTransaction, error) {
	query := `
        SELECT id, user_id, type, amount, currency, status, created_at
        FROM wallet_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get wallet transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.WalletTransaction
	for rows.Next() {
		var tx domain.WalletTransaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Currency, &tx.Status, &tx.CreatedAt); err != nil {
			zap.L().Error("can't scan wallet transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// PromoteUnlocked flips pending entries older than the unlock period to
// available in one statement; returns how many were promoted.
func (r *Repository) PromoteUnlocked(ctx context.Context, before time.Time) (int64, error) {
	query := `
        UPDATE wallet_transactions
        SET status = 'available'
        WHERE status = 'pending' AND created_at <= $1
    `
	tag, err := r.db.Exec(ctx, query, before)
	if err != nil {
		zap.L().Error("can't promote unlocked wallet funds", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
