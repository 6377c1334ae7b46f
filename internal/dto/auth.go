package dto

type RegisterRequestDTO struct {
	Login           string `json:"login" validate:"required,min=3,max=50"`
	Password        string `json:"password" validate:"required,min=8"`
	StakeholderType string `json:"stakeholderType" example:"ecosystem"`
	Currency        string `json:"currency" example:"INR"`
	ReferralCode    string `json:"referralCode,omitempty" example:"I2U-1A2B3C4D"`
}

type RegisterResponseDTO struct {
	Message      string `json:"message"`
	ReferralCode string `json:"referralCode" example:"I2U-9F8E7D6C"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
