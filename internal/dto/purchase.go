package dto

import "time"

type PurchaseRequestDTO struct {
	VariantID int `json:"variant_id" example:"12"`
	Qty       int `json:"qty" example:"1"`
}

type PurchaseResponseDTO struct {
	Token      string    `json:"token"`
	VariantID  int       `json:"variant_id"`
	Qty        int       `json:"qty"`
	UnitPrice  int64     `json:"unit_price"`
	TotalPrice int64     `json:"total_price"`
	Payloads   []string  `json:"payloads"`
	CreatedAt  time.Time `json:"created_at"`
}

type PurchaseHistoryItemDTO struct {
	Token      string     `json:"token"`
	VariantID  int        `json:"variant_id"`
	Qty        int        `json:"qty"`
	UnitPrice  int64      `json:"unit_price"`
	TotalPrice int64      `json:"total_price"`
	Delivered  bool       `json:"delivered"`
	CreatedAt  time.Time  `json:"created_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}
