package dto

import (
	"time"
)

type PayloadResponse struct {
	ID            string    `json:"id,omitempty"`
	Payload       string    `json:"payload"`
	CRC           string    `json:"crc"`
	KeyKind       string    `json:"key_kind"`
	NormalizedKey string    `json:"normalized_key"`
	Amount        string    `json:"amount,omitempty"`
	MerchantName  string    `json:"merchant_name"`
	MerchantCity  string    `json:"merchant_city"`
	CreatedAt     time.Time `json:"created_at"`
}

type BatchPayloadResponse struct {
	Generated int               `json:"generated"`
	Results   []PayloadResponse `json:"results"`
}

type FavoriteResponse struct {
	ID           string    `json:"id"`
	Label        string    `json:"label"`
	PixKey       string    `json:"pix_key"`
	KeyKind      string    `json:"key_kind"`
	MerchantName string    `json:"merchant_name,omitempty"`
	MerchantCity string    `json:"merchant_city,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ValidationError struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorListResponse struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}
