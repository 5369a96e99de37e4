package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/unimanage/backoffice/internal/core/domain"
)

// CreateSiteRequest defines the data needed to open a construction site.
type CreateSiteRequest struct {
	Name   string `json:"name" binding:"required"`
	Status string `json:"status" binding:"omitempty,oneof=Active Completed 'On Hold'"`
}

// UpdateSiteRequest updates a site's name or lifecycle status.
type UpdateSiteRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status" binding:"omitempty,oneof=Active Completed 'On Hold'"`
}

// RecordSiteTransactionRequest books an income or expense against a site.
type RecordSiteTransactionRequest struct {
	Kind          string              `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	Amount        decimal.Decimal     `json:"amount" binding:"required"`
	Date          *time.Time          `json:"date"`
	Description   string              `json:"description"`
	PaymentMethod string              `json:"paymentMethod" binding:"required,oneof=CASH BANK CREDIT"`
	BankAccountID string              `json:"bankAccountID"`
	ExternalBank  *BankDetailsPayload `json:"externalBank"`
}

// SiteResponse defines the data returned for a construction site.
type SiteResponse struct {
	SiteID        string    `json:"siteID"`
	Name          string    `json:"name"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// SiteTransactionResponse defines the data returned for a site cash flow.
type SiteTransactionResponse struct {
	TransactionID string              `json:"transactionID"`
	SiteID        string              `json:"siteID"`
	Kind          string              `json:"kind"`
	Amount        decimal.Decimal     `json:"amount"`
	Date          time.Time           `json:"date"`
	Description   string              `json:"description,omitempty"`
	PaymentMethod string              `json:"paymentMethod"`
	BankAccountID string              `json:"bankAccountID,omitempty"`
	ExternalBank  *BankDetailsPayload `json:"externalBank,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
}

// SiteSummaryResponse is the aggregated financial position of a site.
type SiteSummaryResponse struct {
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	Balance       decimal.Decimal `json:"balance"`
	CreditIncome  decimal.Decimal `json:"creditIncome"`
	CreditExpense decimal.Decimal `json:"creditExpense"`
}

// SiteWithSummaryResponse pairs a site with its derived totals.
type SiteWithSummaryResponse struct {
	Site    SiteResponse        `json:"site"`
	Summary SiteSummaryResponse `json:"summary"`
}

// ToSiteResponse converts a domain.Site to SiteResponse DTO.
func ToSiteResponse(site *domain.Site) SiteResponse {
	return SiteResponse{
		SiteID:        site.SiteID,
		Name:          site.Name,
		Status:        string(site.Status),
		CreatedAt:     site.CreatedAt,
		LastUpdatedAt: site.LastUpdatedAt,
	}
}

// ToListSiteResponse converts a slice of sites to DTOs.
func ToListSiteResponse(sites []domain.Site) []SiteResponse {
	res := make([]SiteResponse, len(sites))
	for i, site := range sites {
		res[i] = ToSiteResponse(&site)
	}
	return res
}

// ToSiteTransactionResponse converts a domain.SiteTransaction to its DTO.
func ToSiteTransactionResponse(txn *domain.SiteTransaction) SiteTransactionResponse {
	resp := SiteTransactionResponse{
		TransactionID: txn.TransactionID,
		SiteID:        txn.SiteID,
		Kind:          string(txn.Kind),
		Amount:        txn.Amount,
		Date:          txn.Date,
		Description:   txn.Description,
		PaymentMethod: string(txn.PaymentMethod),
		BankAccountID: txn.BankAccountID,
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
	}
	if txn.ExternalBank != nil {
		resp.ExternalBank = &BankDetailsPayload{
			BankName:      txn.ExternalBank.BankName,
			AccountNumber: txn.ExternalBank.AccountNumber,
		}
	}
	return resp
}

// ToListSiteTransactionResponse converts a slice of site transactions to DTOs.
func ToListSiteTransactionResponse(txns []domain.SiteTransaction) []SiteTransactionResponse {
	res := make([]SiteTransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToSiteTransactionResponse(&txn)
	}
	return res
}

// ToSiteSummaryResponse converts a domain.SiteSummary to its DTO.
func ToSiteSummaryResponse(summary domain.SiteSummary) SiteSummaryResponse {
	return SiteSummaryResponse{
		Income:        summary.Income,
		Expense:       summary.Expense,
		Balance:       summary.Balance,
		CreditIncome:  summary.CreditIncome,
		CreditExpense: summary.CreditExpense,
	}
}
