package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/pix-brcode-service/internal/dto"
	"github.com/anyulbade/pix-brcode-service/internal/model"
	"github.com/anyulbade/pix-brcode-service/internal/service"
)

type PixHandler struct {
	svc  *service.PixService
	slip *service.SlipService
}

func NewPixHandler(svc *service.PixService, slip *service.SlipService) *PixHandler {
	return &PixHandler{svc: svc, slip: slip}
}

func (h *PixHandler) CreatePayload(c *gin.Context) {
	var req dto.PayloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	charge, err := h.svc.Generate(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, toPayloadResponse(charge))
}

func (h *PixHandler) CreateBatch(c *gin.Context) {
	var req dto.BatchPayloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	charges, validationErrors, err := h.svc.GenerateBatch(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if len(validationErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorListResponse{
			Error:  "batch validation failed",
			Errors: validationErrors,
		})
		return
	}

	results := make([]dto.PayloadResponse, len(charges))
	for i, charge := range charges {
		results[i] = toPayloadResponse(charge)
	}

	c.JSON(http.StatusCreated, dto.BatchPayloadResponse{
		Generated: len(charges),
		Results:   results,
	})
}

func (h *PixHandler) QRCode(c *gin.Context) {
	var req dto.PayloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", "0"))
	if err != nil || size < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size"})
		return
	}

	charge, err := h.svc.Preview(&req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	img, err := h.slip.QRCode(charge, size)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("X-Pix-CRC", charge.CRC)
	c.Data(http.StatusOK, "image/png", img)
}

func (h *PixHandler) Slip(c *gin.Context) {
	var req dto.PayloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	charge, err := h.svc.Preview(&req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	html, err := h.slip.RenderHTML(charge)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render slip: " + err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *PixHandler) ListCharges(c *gin.Context) {
	p := dto.ParsePagination(c)

	charges, totalItems, err := h.svc.ListCharges(c.Request.Context(), p.PageSize, p.Offset)
	if err != nil {
		_ = c.Error(err)
		return
	}

	results := make([]dto.PayloadResponse, len(charges))
	for i, charge := range charges {
		results[i] = toPayloadResponse(charge)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       results,
		"pagination": dto.NewPagination(p.Page, p.PageSize, totalItems),
	})
}

func toPayloadResponse(charge *model.Charge) dto.PayloadResponse {
	resp := dto.PayloadResponse{
		ID:            charge.ID,
		Payload:       charge.Payload,
		CRC:           charge.CRC,
		KeyKind:       charge.KeyKind,
		NormalizedKey: charge.PixKey,
		MerchantName:  charge.MerchantName,
		MerchantCity:  charge.MerchantCity,
		CreatedAt:     charge.CreatedAt,
	}
	if charge.Amount != nil {
		resp.Amount = charge.Amount.StringFixed(2)
	}
	return resp
}
