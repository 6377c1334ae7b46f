package dto

type ExchangeRateResponseDTO struct {
	Rate   float64 `json:"rate" example:"83.5"`
	Date   string  `json:"date" example:"2026-08-29T10:00:00Z"`
	Source string  `json:"source" example:"provider"`
}
