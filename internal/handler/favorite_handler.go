package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anyulbade/pix-brcode-service/internal/dto"
	"github.com/anyulbade/pix-brcode-service/internal/model"
	"github.com/anyulbade/pix-brcode-service/internal/service"
)

type FavoriteHandler struct {
	svc    *service.FavoriteService
	pixSvc *service.PixService
}

func NewFavoriteHandler(svc *service.FavoriteService, pixSvc *service.PixService) *FavoriteHandler {
	return &FavoriteHandler{svc: svc, pixSvc: pixSvc}
}

func (h *FavoriteHandler) Create(c *gin.Context) {
	var req dto.CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	fav, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, toFavoriteResponse(fav))
}

func (h *FavoriteHandler) Get(c *gin.Context) {
	id, ok := favoriteID(c)
	if !ok {
		return
	}

	fav, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toFavoriteResponse(fav))
}

func (h *FavoriteHandler) List(c *gin.Context) {
	p := dto.ParsePagination(c)

	favs, totalItems, err := h.svc.List(c.Request.Context(), p.PageSize, p.Offset)
	if err != nil {
		_ = c.Error(err)
		return
	}

	results := make([]dto.FavoriteResponse, len(favs))
	for i, fav := range favs {
		results[i] = toFavoriteResponse(fav)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       results,
		"pagination": dto.NewPagination(p.Page, p.PageSize, totalItems),
	})
}

func (h *FavoriteHandler) Delete(c *gin.Context) {
	id, ok := favoriteID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FavoriteHandler) CreatePayload(c *gin.Context) {
	id, ok := favoriteID(c)
	if !ok {
		return
	}

	var req dto.FavoritePayloadRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
				Error: "validation failed: " + err.Error(),
			})
			return
		}
	}

	charge, err := h.pixSvc.GenerateFromFavorite(c.Request.Context(), id, req.Amount)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, toPayloadResponse(charge))
}

func favoriteID(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid favorite id"})
		return "", false
	}
	return id.String(), true
}

func toFavoriteResponse(fav *model.FavoriteKey) dto.FavoriteResponse {
	return dto.FavoriteResponse{
		ID:           fav.ID,
		Label:        fav.Label,
		PixKey:       fav.PixKey,
		KeyKind:      fav.KeyKind,
		MerchantName: fav.MerchantName,
		MerchantCity: fav.MerchantCity,
		CreatedAt:    fav.CreatedAt,
	}
}
