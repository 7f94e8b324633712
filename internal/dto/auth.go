package dto

type LoginRequestDTO struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	Role    string `json:"role" example:"administrator"`
	Message string `json:"message"`
}

type LogoutResponseDTO struct {
	Message string `json:"message"`
}
