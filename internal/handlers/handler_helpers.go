package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unimanage/backoffice/internal/apperrors"
)

// operatorHeader names the clerk performing the request. The back office
// runs on a trusted network without per-user authentication; the header is
// an audit hint, not a credential.
const operatorHeader = "X-Operator-ID"

func operatorID(c *gin.Context) string {
	if op := c.GetHeader(operatorHeader); op != "" {
		return op
	}
	return "system"
}

// respondWithError maps service errors onto HTTP statuses. Requests the
// business state cannot satisfy (oversold stock, an uncovered sell, an
// ineligible account) are 422: the request was well formed, the state said
// no. Structurally bad input is 400.
func respondWithError(c *gin.Context, logger *slog.Logger, err error) {
	var (
		insufficientStock    *apperrors.InsufficientStockError
		insufficientHoldings *apperrors.InsufficientHoldingsError
		insufficientCash     *apperrors.InsufficientLocalCashError
		ineligibleAccount    *apperrors.IneligibleBankAccountError
	)

	switch {
	case errors.As(err, &insufficientStock),
		errors.As(err, &insufficientHoldings),
		errors.As(err, &insufficientCash),
		errors.As(err, &ineligibleAccount):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
