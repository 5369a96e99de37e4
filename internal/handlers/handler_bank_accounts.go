package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/unimanage/backoffice/internal/core/ports/services"
	"github.com/unimanage/backoffice/internal/dto"
	"github.com/unimanage/backoffice/internal/middleware"
)

// bankAccountHandler handles HTTP requests for company bank accounts.
type bankAccountHandler struct {
	bankAccountService portssvc.BankAccountSvcFacade
}

func newBankAccountHandler(bs portssvc.BankAccountSvcFacade) *bankAccountHandler {
	return &bankAccountHandler{bankAccountService: bs}
}

// registerBankAccountRoutes registers routes for bank account management.
func registerBankAccountRoutes(rg *gin.RouterGroup, bs portssvc.BankAccountSvcFacade) {
	h := newBankAccountHandler(bs)

	accounts := rg.Group("/bank-accounts")
	{
		accounts.POST("", h.createBankAccount)
		accounts.GET("", h.listBankAccounts)
		accounts.GET("/:id", h.getBankAccount)
		accounts.DELETE("/:id", h.deleteBankAccount)
	}
}

func (h *bankAccountHandler) createBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.bankAccountService.CreateBankAccount(c.Request.Context(), req, operatorID(c))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(account))
}

func (h *bankAccountHandler) listBankAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accounts, err := h.bankAccountService.ListBankAccounts(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListBankAccountResponse(accounts))
}

func (h *bankAccountHandler) getBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	account, err := h.bankAccountService.GetBankAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

func (h *bankAccountHandler) deleteBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.bankAccountService.DeleteBankAccount(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
