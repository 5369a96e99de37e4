package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/unimanage/backoffice/internal/core/ports/services"
	"github.com/unimanage/backoffice/internal/dto"
	"github.com/unimanage/backoffice/internal/middleware"
)

// pharmacyHandler handles HTTP requests for the pharmacy module.
type pharmacyHandler struct {
	pharmacyService portssvc.PharmacySvcFacade
}

func newPharmacyHandler(ps portssvc.PharmacySvcFacade) *pharmacyHandler {
	return &pharmacyHandler{pharmacyService: ps}
}

// registerPharmacyRoutes registers routes for the pharmacy module.
func registerPharmacyRoutes(rg *gin.RouterGroup, ps portssvc.PharmacySvcFacade) {
	h := newPharmacyHandler(ps)

	pharmacy := rg.Group("/pharmacy")
	{
		pharmacy.POST("/items", h.createStockItem)
		pharmacy.GET("/items", h.listStockItems)
		pharmacy.GET("/items/:id", h.getStockItem)
		pharmacy.PATCH("/items/:id", h.updateStockItem)
		pharmacy.POST("/items/:id/restock", h.restockItem)
		pharmacy.POST("/sales", h.checkout)
		pharmacy.GET("/sales", h.listSales)
		pharmacy.GET("/dashboard", h.getDashboard)
	}
}

func (h *pharmacyHandler) createStockItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateStockItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.pharmacyService.CreateStockItem(c.Request.Context(), req, operatorID(c))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToStockItemResponse(item))
}

func (h *pharmacyHandler) listStockItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	items, err := h.pharmacyService.ListStockItems(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListStockItemResponse(items))
}

func (h *pharmacyHandler) getStockItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	item, err := h.pharmacyService.GetStockItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStockItemResponse(item))
}

func (h *pharmacyHandler) updateStockItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateStockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateStockItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.pharmacyService.UpdateStockItem(c.Request.Context(), c.Param("id"), req, operatorID(c))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStockItemResponse(item))
}

func (h *pharmacyHandler) restockItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RestockItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.pharmacyService.RestockItem(c.Request.Context(), c.Param("id"), req, operatorID(c))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStockItemResponse(item))
}

func (h *pharmacyHandler) checkout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Checkout", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sale, err := h.pharmacyService.Checkout(c.Request.Context(), req, operatorID(c))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

func (h *pharmacyHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sales, err := h.pharmacyService.ListSales(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListSaleResponse(sales))
}

func (h *pharmacyHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dashboard, err := h.pharmacyService.GetDashboard(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
