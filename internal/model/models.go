package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type FavoriteKey struct {
	ID           string    `json:"id"`
	Label        string    `json:"label"`
	PixKey       string    `json:"pix_key"`
	KeyKind      string    `json:"key_kind"`
	MerchantName string    `json:"merchant_name,omitempty"`
	MerchantCity string    `json:"merchant_city,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Charge struct {
	ID           string           `json:"id"`
	PixKey       string           `json:"pix_key"`
	KeyKind      string           `json:"key_kind"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	MerchantName string           `json:"merchant_name"`
	MerchantCity string           `json:"merchant_city"`
	Payload      string           `json:"payload"`
	CRC          string           `json:"crc"`
	FavoriteID   *string          `json:"favorite_id,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}
