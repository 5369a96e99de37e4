package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/unimanage/backoffice/internal/core/ports/services"
	"github.com/unimanage/backoffice/internal/middleware"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	// Define rate limit: 300 requests per minute per client IP
	rate, _ := limiter.NewRateFromFormatted("300-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	v1 := r.Group("/api/v1", middleware.RateLimit(ipLimiter))

	registerExchangeRoutes(v1, services.Exchange, services.Rate)
	registerPharmacyRoutes(v1, services.Pharmacy)
	registerConstructionRoutes(v1, services.Construction)
	registerBankAccountRoutes(v1, services.BankAccount)
	registerActivityRoutes(v1, services.Activity)
}
