package dto

type CreatePartnerRequestDTO struct {
	Name string `json:"name" validate:"required" example:"Acme"`
}

type CreatePartnerResponseDTO struct {
	Name    string `json:"name" example:"Acme"`
	Message string `json:"message"`
}

type ListPartnersResponseDTO struct {
	Partners []string `json:"partners"`
}

type PartnerOverviewResponseDTO struct {
	Name             string  `json:"name" example:"Acme"`
	Entries          int     `json:"entries" example:"3"`
	TotalConsumption float64 `json:"total_consumption" example:"150"`
	TotalCashAmount  float64 `json:"total_cash_amount" example:"30"`
	TotalPaid        float64 `json:"total_paid" example:"25"`
	TotalBalance     float64 `json:"total_balance" example:"-5"`
}
