package domain

import "time"

const (
	TopupPending  = "PENDING"
	TopupApproved = "APPROVED"
	TopupRejected = "REJECTED"
)

const (
	MethodGCash  = "gcash"
	MethodGoTyme = "gotyme"
)

// User is keyed by the chat platform's user id. Balance is whole currency
// units, never negative.
type User struct {
	ID        int64     `db:"id"`
	Balance   int64     `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
}

type Category struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type Product struct {
	ID          int       `db:"id"`
	CategoryID  *int      `db:"category_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}

type Variant struct {
	ID          int       `db:"id"`
	ProductID   int       `db:"product_id"`
	Name        string    `db:"name"`
	Price       int64     `db:"price"`
	ThumbFileID *string   `db:"thumb_file_id"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}

// StockItem is one deliverable unit. Once sold it is frozen: the payload never
// changes and purchase_token points at exactly one purchase.
type StockItem struct {
	ID            int64      `db:"id"`
	VariantID     int        `db:"variant_id"`
	Payload       string     `db:"payload"`
	IsSold        bool       `db:"is_sold"`
	SoldAt        *time.Time `db:"sold_at"`
	PurchaseToken *string    `db:"purchase_token"`
	CreatedAt     time.Time  `db:"created_at"`
}

// Purchase snapshots unit price at the time of sale; TotalPrice is always
// Qty * UnitPrice.
type Purchase struct {
	ID          int64      `db:"id"`
	Token       string     `db:"token"`
	UserID      int64      `db:"user_id"`
	VariantID   int        `db:"variant_id"`
	Qty         int        `db:"qty"`
	UnitPrice   int64      `db:"unit_price"`
	TotalPrice  int64      `db:"total_price"`
	Delivered   bool       `db:"delivered"`
	DeliveredAt *time.Time `db:"delivered_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

type Topup struct {
	ID          string     `db:"id"`
	UserID      int64      `db:"user_id"`
	Amount      int64      `db:"amount"`
	Method      string     `db:"method"`
	Status      string     `db:"status"`
	ProofFileID *string    `db:"proof_file_id"`
	CreatedAt   time.Time  `db:"created_at"`
	DecidedAt   *time.Time `db:"decided_at"`
	DecidedBy   *int64     `db:"decided_by"`
	NotifiedAt  *time.Time `db:"notified_at"`
}
