package dto

type CashfreeConfigResponseDTO struct {
	AppID string `json:"appId" example:"app-123"`
	Mode  string `json:"mode" example:"sandbox"`
}

type CreateOrderResponseDTO struct {
	OrderID          string  `json:"orderId" example:"a3f1c2d4-5678-90ab-cdef-111213141516"`
	PaymentSessionID string  `json:"paymentSessionId" example:"session-abc"`
	Amount           float64 `json:"amount" example:"999"`
	Currency         string  `json:"currency" example:"INR"`
}

type VerifyOrderResponseDTO struct {
	OrderID string `json:"orderId" example:"a3f1c2d4-5678-90ab-cdef-111213141516"`
	Status  string `json:"status" example:"verified"`
}
