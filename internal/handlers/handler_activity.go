package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/unimanage/backoffice/internal/core/ports/services"
	"github.com/unimanage/backoffice/internal/dto"
	"github.com/unimanage/backoffice/internal/middleware"
)

// activityHandler handles HTTP requests for the activity log.
type activityHandler struct {
	activityService portssvc.ActivitySvcFacade
}

// registerActivityRoutes registers routes for the activity log.
func registerActivityRoutes(rg *gin.RouterGroup, as portssvc.ActivitySvcFacade) {
	h := &activityHandler{activityService: as}
	rg.GET("/activity", h.listRecent)
}

func (h *activityHandler) listRecent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	entries, err := h.activityService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListActivityLogResponse(entries))
}
