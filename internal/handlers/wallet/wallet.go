package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/i2u-ai/platform/internal/domain"
	"github.com/i2u-ai/platform/internal/dto"
	"github.com/i2u-ai/platform/internal/service/referralservice"
	"github.com/i2u-ai/platform/internal/service/walletservice"
	"github.com/i2u-ai/platform/pkg/auth"
	"github.com/i2u-ai/platform/pkg/utils"
)

//go:generate mockgen -source=wallet.go -destination=wallet_mock.go -package=wallet

type Service interface {
	Balances(ctx context.Context, userID int) (map[domain.Currency]domain.WalletBalance, error)
	Transactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error)
	Withdraw(ctx context.Context, userID int, amount float64, currency domain.Currency) (*domain.WalletTransaction, error)
}

type Referrals interface {
	Summary(ctx context.Context, userID int) (*referralservice.Summary, error)
}

type WalletHandler struct {
	walletService   Service
	referralService Referrals
}

func New(walletService Service, referralService Referrals) *WalletHandler {
	return &WalletHandler{
		walletService:   walletService,
		referralService: referralService,
	}
}

// GetWallet godoc
//
//	@Summary		Get wallet balances
//	@Description	Available and pending balances per currency for the authenticated user
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balances, err := h.walletService.Balances(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	inr := balances[domain.CurrencyINR]
	usd := balances[domain.CurrencyUSD]
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		INR: dto.WalletBalanceDTO{Available: inr.Available, Pending: inr.Pending},
		USD: dto.WalletBalanceDTO{Available: usd.Available, Pending: usd.Pending},
	})
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal
//	@Description	Record a withdrawal request against the available balance; payout itself is handled out of band
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.WalletWithdrawRequestDTO	true	"Withdrawal amount and currency"
//	@Success		200		{object}	dto.WalletWithdrawResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WalletWithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.walletService.Withdraw(r.Context(), userID, req.Amount, currency)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.WalletWithdrawResponseDTO{
		ID:       tx.ID,
		Amount:   tx.Amount,
		Currency: string(tx.Currency),
		Status:   string(tx.Status),
		Message:  "Withdrawal recorded",
	})
}

// GetTransactions godoc
//
//	@Summary		Get wallet transaction history
//	@Description	Wallet ledger entries for the authenticated user, newest first
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WalletTransactionResponseDTO
//	@Success		204	{object}	utils.Response	"No transactions"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.walletService.Transactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions")
		return
	}

	response := make([]dto.WalletTransactionResponseDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.WalletTransactionResponseDTO{
			ID:        tx.ID,
			Type:      string(tx.Type),
			Amount:    tx.Amount,
			Currency:  string(tx.Currency),
			Status:    string(tx.Status),
			CreatedAt: tx.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetReferrals godoc
//
//	@Summary		Get referral earnings summary
//	@Description	Referral count, per-currency earnings and a display-only combined INR total at the reference exchange rate
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReferralSummaryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/referrals [get]
func (h *WalletHandler) GetReferrals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	summary, err := h.referralService.Summary(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	referrals := make([]dto.ReferralDTO, len(summary.Referrals))
	for i, ref := range summary.Referrals {
		referrals[i] = dto.ReferralDTO{
			ReferredID:  ref.ReferredID,
			EarningsINR: ref.EarningsINR,
			EarningsUSD: ref.EarningsUSD,
			Status:      string(ref.Status),
			CreatedAt:   ref.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReferralSummaryResponseDTO{
		ReferralCount: summary.ReferralCount,
		EarningsINR:   summary.EarningsINR,
		EarningsUSD:   summary.EarningsUSD,
		CombinedINR:   summary.CombinedINR,
		Referrals:     referrals,
	})
}
