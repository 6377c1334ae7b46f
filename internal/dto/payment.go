package dto

// PendingAmountsDTO holds the open payment amount keyed by currency; the
// slot for the other currency stays zero.
type PendingAmountsDTO struct {
	INR float64 `json:"INR" example:"999"`
	USD float64 `json:"USD" example:"0"`
}

type PendingStatusResponseDTO struct {
	HasPendingPayment bool              `json:"hasPendingPayment" example:"true"`
	Amount            float64           `json:"amount,omitempty" example:"999"`
	Amounts           PendingAmountsDTO `json:"amounts"`
	Currency          string            `json:"currency,omitempty" example:"INR"`
	AwaitingINR       bool              `json:"awaitingINR" example:"true"`
	AwaitingUSD       bool              `json:"awaitingUSD" example:"false"`
	GlitchFlagged     bool              `json:"glitchFlagged" example:"true"`
	GlitchFlaggedAt   *string           `json:"glitchFlaggedAt,omitempty" example:"2026-08-27T12:00:00Z"`
	GlitchResolved    bool              `json:"glitchResolved" example:"false"`
	DelayHours        int               `json:"delayHours" example:"30"`
	DelayDays         int               `json:"delayDays" example:"1"`
	BonusPercent      float64           `json:"bonusPercent" example:"45"`
	RegistrationFee   float64           `json:"registrationFee,omitempty" example:"999"`
	FeeCurrency       string            `json:"feeCurrency,omitempty" example:"INR"`
}

// FlagGlitchRequestDTO is optional context from the user; an empty body
// is a valid flag request.
type FlagGlitchRequestDTO struct {
	Reason string `json:"reason,omitempty" example:"Money left my account but the page still shows pending"`
}

type FlagGlitchResponseDTO struct {
	Message         string `json:"message"`
	GlitchFlaggedAt string `json:"glitchFlaggedAt" example:"2026-08-27T12:00:00Z"`
}
