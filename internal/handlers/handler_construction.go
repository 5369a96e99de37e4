package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/unimanage/backoffice/internal/core/ports/services"
	"github.com/unimanage/backoffice/internal/dto"
	"github.com/unimanage/backoffice/internal/middleware"
)

// constructionHandler handles HTTP requests for the construction module.
type constructionHandler struct {
	constructionService portssvc.ConstructionSvcFacade
}

func newConstructionHandler(cs portssvc.ConstructionSvcFacade) *constructionHandler {
	return &constructionHandler{constructionService: cs}
}

// registerConstructionRoutes registers routes for the construction module.
func registerConstructionRoutes(rg *gin.RouterGroup, cs portssvc.ConstructionSvcFacade) {
	h := newConstructionHandler(cs)

	construction := rg.Group("/construction")
	{
		construction.POST("/sites", h.createSite)
		construction.GET("/sites", h.listSites)
		construction.GET("/sites/:id", h.getSite)
		construction.PATCH("/sites/:id", h.updateSite)
		construction.DELETE("/sites/:id", h.deleteSite)
		construction.GET("/sites/:id/summary", h.getSiteSummary)
		construction.GET("/sites/:id/transactions", h.listSiteTransactions)
		construction.POST("/sites/:id/transactions", h.recordSiteTransaction)
		construction.GET("/summary", h.getOverallSummary)
	}
}

func (h *constructionHandler) createSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSite", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	site, err := h.constructionService.CreateSite(c.Request.Context(), req, operatorID(c))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToSiteResponse(site))
}

func (h *constructionHandler) listSites(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sites, err := h.constructionService.ListSites(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListSiteResponse(sites))
}

func (h *constructionHandler) getSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	site, err := h.constructionService.GetSiteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSiteResponse(site))
}

func (h *constructionHandler) updateSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSite", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	site, err := h.constructionService.UpdateSite(c.Request.Context(), c.Param("id"), req, operatorID(c))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSiteResponse(site))
}

func (h *constructionHandler) deleteSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.constructionService.DeleteSite(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *constructionHandler) getSiteSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	summary, err := h.constructionService.GetSiteSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSiteSummaryResponse(summary))
}

func (h *constructionHandler) listSiteTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txns, err := h.constructionService.ListSiteTransactions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListSiteTransactionResponse(txns))
}

func (h *constructionHandler) recordSiteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordSiteTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordSiteTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.constructionService.RecordSiteTransaction(c.Request.Context(), c.Param("id"), req, operatorID(c))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToSiteTransactionResponse(txn))
}

func (h *constructionHandler) getOverallSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	summary, err := h.constructionService.GetOverallSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSiteSummaryResponse(summary))
}
