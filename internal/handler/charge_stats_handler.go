package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/pix-brcode-service/internal/service"
)

type ChargeStatsHandler struct {
	svc *service.ChargeStatsService
}

func NewChargeStatsHandler(svc *service.ChargeStatsService) *ChargeStatsHandler {
	return &ChargeStatsHandler{svc: svc}
}

var validKeyKinds = map[string]bool{
	"EMAIL": true, "RANDOM": true, "PHONE": true, "CPF": true, "CNPJ": true, "OTHER": true,
}

func (h *ChargeStatsHandler) GetStats(c *gin.Context) {
	keyKind := strings.ToUpper(c.Query("key_kind"))
	dateFrom := c.Query("date_from")
	dateTo := c.Query("date_to")
	sortBy := c.DefaultQuery("sort_by", "charge_count")
	order := c.DefaultQuery("order", "desc")

	if keyKind != "" && !validKeyKinds[keyKind] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid key_kind"})
		return
	}

	from, ok := parseDate(dateFrom)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_from format"})
		return
	}
	to, ok := parseDate(dateTo)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_to format"})
		return
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date_from must be before date_to"})
		return
	}

	results, summary, err := h.svc.Stats(c.Request.Context(), keyKind, dateFrom, dateTo, sortBy, order)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    results,
		"summary": summary,
	})
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	t, err := time.Parse("2006-01-02", s)
	return t, err == nil
}
