package dto

import "time"

type TopupCreateRequestDTO struct {
	// Amount is the raw user input; currency symbols and thousands
	// separators are tolerated, e.g. "₱1,500.00".
	Amount string `json:"amount" example:"₱500"`
	Method string `json:"method" example:"gcash"`
}

type TopupResponseDTO struct {
	TopupID string `json:"topup_id" example:"9b1c7a52-4f0e-4f5a-9d2e-7f6c1a3b8d90"`
	Amount  int64  `json:"amount" example:"500"`
	Method  string `json:"method" example:"gcash"`
	Status  string `json:"status" example:"PENDING"`
}

type TopupProofRequestDTO struct {
	FileID string `json:"file_id" example:"AgACAgUAAxkBAAIB"`
}

type TopupDTO struct {
	TopupID   string     `json:"topup_id"`
	UserID    int64      `json:"user_id"`
	Amount    int64      `json:"amount"`
	Method    string     `json:"method"`
	Status    string     `json:"status"`
	HasProof  bool       `json:"has_proof"`
	CreatedAt time.Time  `json:"created_at"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
}
