package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/pix-brcode-service/internal/brcode"
	"github.com/anyulbade/pix-brcode-service/internal/qrcode"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

func MapError(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, brcode.ErrEmptyKey):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: "pix key is required", Field: "pix_key"}
	case errors.Is(err, brcode.ErrInvalidAmount):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: "amount must be a non-negative decimal", Field: "amount", Details: err.Error()}
	case errors.Is(err, brcode.ErrFieldTooLong):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: "pix key too long", Field: "pix_key", Details: err.Error()}
	case errors.Is(err, qrcode.ErrEmptyPayload):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: "nothing to render"}
	}
	return MapDBError(err)
}

func MapDBError(err error) (int, ErrorResponse) {
	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound, ErrorResponse{Error: "resource not found"}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return http.StatusConflict, ErrorResponse{
				Error:   "resource already exists",
				Details: pgErr.Detail,
			}
		case "23503": // foreign_key_violation
			return http.StatusBadRequest, ErrorResponse{
				Error:   "referenced resource does not exist",
				Details: pgErr.Detail,
			}
		case "23514": // check_violation
			return http.StatusBadRequest, ErrorResponse{
				Error:   "constraint violation",
				Details: pgErr.Detail,
			}
		case "22001", "22003": // string_data_right_truncation, numeric_value_out_of_range
			return http.StatusBadRequest, ErrorResponse{
				Error:   "value out of range",
				Details: pgErr.Message,
			}
		}
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			status, resp := MapError(err)
			c.JSON(status, resp)
		}
	}
}
