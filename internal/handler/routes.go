package handler

import (
	"github.com/gin-gonic/gin"
)

func RegisterPixRoutes(api *gin.RouterGroup, pix *PixHandler) {
	api.POST("/pix/payload", pix.CreatePayload)
	api.POST("/pix/payload/batch", pix.CreateBatch)
	api.POST("/pix/qrcode", pix.QRCode)
	api.POST("/pix/slip", pix.Slip)
	api.GET("/pix/charges", pix.ListCharges)
}

func RegisterFavoriteRoutes(api *gin.RouterGroup, fav *FavoriteHandler) {
	api.POST("/favorites", fav.Create)
	api.GET("/favorites", fav.List)
	api.GET("/favorites/:id", fav.Get)
	api.DELETE("/favorites/:id", fav.Delete)
	api.POST("/favorites/:id/payload", fav.CreatePayload)
}

func RegisterStatsRoutes(api *gin.RouterGroup, stats *ChargeStatsHandler) {
	api.GET("/pix/charges/stats", stats.GetStats)
}
