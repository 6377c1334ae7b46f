package dto

import "time"

type ReferralDTO struct {
	ReferredID  int       `json:"referredId" example:"42"`
	EarningsINR float64   `json:"earningsINR" example:"399.8"`
	EarningsUSD float64   `json:"earningsUSD" example:"0"`
	Status      string    `json:"status" example:"pending"`
	CreatedAt   time.Time `json:"created_at" example:"2026-08-15T10:00:00Z"`
}

type ReferralSummaryResponseDTO struct {
	ReferralCount int           `json:"referralCount" example:"3"`
	EarningsINR   float64       `json:"earningsINR" example:"399.8"`
	EarningsUSD   float64       `json:"earningsUSD" example:"10"`
	CombinedINR   float64       `json:"combinedINR" example:"1234.8"`
	Referrals     []ReferralDTO `json:"referrals"`
}
