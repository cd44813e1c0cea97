package dto

type CategoryDTO struct {
	ID   int    `json:"id" example:"1"`
	Name string `json:"name" example:"Streaming"`
}

type ProductDTO struct {
	ID          int    `json:"id" example:"3"`
	Name        string `json:"name" example:"VPN Premium"`
	Description string `json:"description"`
}

type VariantDTO struct {
	ID      int    `json:"id" example:"12"`
	Name    string `json:"name" example:"1-month plan"`
	Price   int64  `json:"price" example:"150"`
	InStock int    `json:"in_stock" example:"8"`
}

type CategoryCreateRequestDTO struct {
	Name string `json:"name" example:"Streaming"`
}

type ProductCreateRequestDTO struct {
	CategoryID  *int   `json:"category_id" example:"1"`
	Name        string `json:"name" example:"VPN Premium"`
	Description string `json:"description"`
}

type VariantCreateRequestDTO struct {
	ProductID   int     `json:"product_id" example:"3"`
	Name        string  `json:"name" example:"1-month plan"`
	Price       int64   `json:"price" example:"150"`
	ThumbFileID *string `json:"thumb_file_id,omitempty"`
}

type StockUploadRequestDTO struct {
	// Payloads holds one deliverable secret per non-empty line.
	Payloads string `json:"payloads" example:"user1:pass1\nuser2:pass2"`
}

type StockUploadResponseDTO struct {
	Added int `json:"added" example:"25"`
}
