package dto

type DynamicStatsResponseDTO struct {
	StakeholderType        string   `json:"stakeholderType" example:"ecosystem"`
	SignupCount            int      `json:"signupCount" example:"80"`
	CurrentPriceINR        float64  `json:"currentPriceINR" example:"999"`
	CurrentPriceUSD        float64  `json:"currentPriceUSD" example:"12"`
	NextPriceINR           *float64 `json:"nextPriceINR" example:"1999"`
	NextPriceUSD           *float64 `json:"nextPriceUSD" example:"24"`
	NextTierAt             *int     `json:"nextTierAt" example:"100"`
	SpotsRemaining         int      `json:"spotsRemaining" example:"20"`
	IsLastTier             bool     `json:"isLastTier" example:"false"`
	AvgRegistrationsPerDay float64  `json:"avgRegistrationsPerDay" example:"2"`
	DaysUntilNextTier      *int     `json:"daysUntilNextTier" example:"10"`
	EstimatedNextTierDate  *string  `json:"estimatedNextTierDate" example:"2026-09-08T00:00:00Z"`
}
