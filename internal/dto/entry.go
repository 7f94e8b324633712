package dto

type AddEntryRequestDTO struct {
	Date           string  `json:"date" validate:"required" example:"2024-01-01"`
	LastRead       float64 `json:"last_read" example:"100"`
	NewRead        float64 `json:"new_read" example:"150"`
	WithdrawlPrice float64 `json:"withdrawl_price" example:"0.2"`
	Paid           float64 `json:"paid" example:"8"`
}

type EntryResponseDTO struct {
	Date            string  `json:"date" example:"2024-01-01"`
	LastRead        float64 `json:"last_read" example:"100"`
	NewRead         float64 `json:"new_read" example:"150"`
	Withdrawl       float64 `json:"withdrawl" example:"50"`
	WithdrawlPrice  float64 `json:"withdrawl_price" example:"0.2"`
	WithdrawlByCash float64 `json:"withdrawl_by_cash" example:"10"`
	Paid            float64 `json:"paid" example:"8"`
	Left            float64 `json:"left" example:"-2"`
}

type SummaryResponseDTO struct {
	TotalConsumption float64 `json:"total_consumption" example:"50"`
	TotalCashAmount  float64 `json:"total_cash_amount" example:"10"`
	TotalPaid        float64 `json:"total_paid" example:"8"`
	TotalBalance     float64 `json:"total_balance" example:"-2"`
}

type TariffResponseDTO struct {
	Rate      float64 `json:"rate" example:"0.2"`
	Currency  string  `json:"currency" example:"USD"`
	UpdatedAt string  `json:"updated_at" example:"2024-01-01T12:00:00Z"`
}
