package dto

type RegisterRequestDTO struct {
	UserID int64 `json:"user_id" example:"123456789"`
}

type RegisterResponseDTO struct {
	UserID  int64  `json:"user_id" example:"123456789"`
	Balance int64  `json:"balance" example:"0"`
	Token   string `json:"token"`
}

type BalanceResponseDTO struct {
	Balance int64 `json:"balance" example:"500"`
}
