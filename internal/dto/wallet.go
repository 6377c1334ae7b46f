package dto

import "time"

type WalletBalanceDTO struct {
	Available float64 `json:"available" example:"399.8"`
	Pending   float64 `json:"pending" example:"199.9"`
}

type WalletResponseDTO struct {
	INR WalletBalanceDTO `json:"INR"`
	USD WalletBalanceDTO `json:"USD"`
}

type WalletWithdrawRequestDTO struct {
	Amount   float64 `json:"amount" example:"250.5"`
	Currency string  `json:"currency" example:"INR"`
}

type WalletWithdrawResponseDTO struct {
	ID       int     `json:"id" example:"23"`
	Amount   float64 `json:"amount" example:"250.5"`
	Currency string  `json:"currency" example:"INR"`
	Status   string  `json:"status" example:"withdrawn"`
	Message  string  `json:"message" example:"Withdrawal recorded"`
}

type WalletTransactionResponseDTO struct {
	ID        int       `json:"id" example:"17"`
	Type      string    `json:"type" example:"referral_credit"`
	Amount    float64   `json:"amount" example:"399.8"`
	Currency  string    `json:"currency" example:"INR"`
	Status    string    `json:"status" example:"pending"`
	CreatedAt time.Time `json:"created_at" example:"2026-08-15T10:00:00Z"`
}
