package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/unimanage/backoffice/internal/core/ports/services"
	"github.com/unimanage/backoffice/internal/dto"
	"github.com/unimanage/backoffice/internal/middleware"
)

// exchangeHandler handles HTTP requests for the currency exchange desk.
type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
	rateService     portssvc.RateSvcFacade
}

func newExchangeHandler(es portssvc.ExchangeSvcFacade, rs portssvc.RateSvcFacade) *exchangeHandler {
	return &exchangeHandler{exchangeService: es, rateService: rs}
}

// registerExchangeRoutes registers routes for the exchange desk.
func registerExchangeRoutes(rg *gin.RouterGroup, es portssvc.ExchangeSvcFacade, rs portssvc.RateSvcFacade) {
	h := newExchangeHandler(es, rs)

	exchange := rg.Group("/exchange")
	{
		exchange.POST("/transactions", h.recordTransaction)
		exchange.GET("/transactions", h.listTransactions)
		exchange.GET("/transactions/:id", h.getTransaction)
		exchange.DELETE("/transactions/:id", h.deleteTransaction)
		exchange.GET("/holdings", h.getHoldings)
		exchange.GET("/stats", h.getStats)
		exchange.GET("/rates", h.getRates)
		exchange.PUT("/rates", h.replaceRates)
	}
}

func (h *exchangeHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.exchangeService.RecordTransaction(c.Request.Context(), req, operatorID(c))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExchangeTransactionResponse(txn))
}

func (h *exchangeHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txns, err := h.exchangeService.ListTransactions(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeTransactionResponse(txns))
}

func (h *exchangeHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txn, err := h.exchangeService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeTransactionResponse(txn))
}

func (h *exchangeHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.exchangeService.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *exchangeHandler) getHoldings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vault, err := h.exchangeService.GetHoldings(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToHoldingsResponse(vault))
}

func (h *exchangeHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stats, err := h.exchangeService.GetStats(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeStatsResponse(stats))
}

func (h *exchangeHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	table, err := h.rateService.GetRates(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListRateResponse(table))
}

func (h *exchangeHandler) replaceRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReplaceRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReplaceRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	table, err := h.rateService.ReplaceRates(c.Request.Context(), req, operatorID(c))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListRateResponse(table))
}
