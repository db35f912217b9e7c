package dto

type PayloadRequest struct {
	PixKey       string `json:"pix_key" binding:"required"`
	Amount       string `json:"amount"`
	MerchantName string `json:"merchant_name"`
	MerchantCity string `json:"merchant_city"`
}

type BatchPayloadRequest struct {
	Items []PayloadRequest `json:"items" binding:"required,min=1,max=100,dive"`
}

type FavoritePayloadRequest struct {
	Amount string `json:"amount"`
}

type CreateFavoriteRequest struct {
	Label        string `json:"label" binding:"required,max=60"`
	PixKey       string `json:"pix_key" binding:"required"`
	MerchantName string `json:"merchant_name" binding:"max=100"`
	MerchantCity string `json:"merchant_city" binding:"max=100"`
}
