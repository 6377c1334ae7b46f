package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/internal/pg"
	"go.uber.org/zap"
)

const userColumns = `id, login, password_hash, stakeholder_type, currency, referral_code, referred_by, subscription_status, registration_fee, awaiting_inr, awaiting_usd, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.StakeholderType,
		&user.Currency, &user.ReferralCode, &user.ReferredBy,
		&user.SubscriptionStatus, &user.RegistrationFee,
		&user.AwaitingINR, &user.AwaitingUSD, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE login = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, login))
	if err != nil {
		zap.L().Error("can't find user by login", zap.Error(err))
	}
	return user, err
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		zap.L().Error("can't find user by id", zap.Error(err))
	}
	return user, err
}

func (r *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE referral_code = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, code))
	if err != nil {
		zap.L().Error("can't find user by referral code", zap.Error(err))
	}
	return user, err
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (login, password_hash, stakeholder_type, currency, referral_code, referred_by, subscription_status, registration_fee)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + userColumns
	created, err := scanUser(r.db.QueryRow(ctx, query,
		user.Login, user.PasswordHash, user.StakeholderType, user.Currency,
		user.ReferralCode, user.ReferredBy, user.SubscriptionStatus, user.RegistrationFee,
	))
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// MarkRegistered activates the subscription and clears the awaiting-payment
// flags once a registration payment verifies.
func (r *Repository) MarkRegistered(ctx context.Context, userID int, fee float64, currency domain.Currency) error {
	query := `
        UPDATE users
        SET subscription_status = $2, registration_fee = $3, currency = $4, awaiting_inr = FALSE, awaiting_usd = FALSE
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, userID, domain.SubscriptionActive, fee, currency); err != nil {
		zap.L().Error("can't mark user registered", zap.Error(err))
		return err
	}
	return nil
}

// SetAwaitingPayment raises the awaiting flag for the intent's currency
// while a registration payment is open.
func (r *Repository) SetAwaitingPayment(ctx context.Context, userID int, currency domain.Currency) error {
	query := `
        UPDATE users
        SET awaiting_inr = awaiting_inr OR $2, awaiting_usd = awaiting_usd OR $3
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, userID, currency == domain.CurrencyINR, currency == domain.CurrencyUSD)
	if err != nil {
		zap.L().Error("can't set awaiting payment flag", zap.Error(err))
		return err
	}
	return nil
}
