package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/unimanage/backoffice/internal/core/domain"
)

// BankDetailsPayload carries external bank counterparty details.
type BankDetailsPayload struct {
	BankName      string `json:"bankName" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
}

// RecordExchangeRequest defines the data needed to record a buy or sell at
// the exchange desk.
type RecordExchangeRequest struct {
	Kind          string              `json:"kind" binding:"required,oneof=BUY SELL"`
	CurrencyCode  string              `json:"currencyCode" binding:"required,uppercase,min=3,max=5"`
	Amount        decimal.Decimal     `json:"amount" binding:"required"`
	Rate          decimal.Decimal     `json:"rate" binding:"required"`
	CustomerName  string              `json:"customerName"`
	CustomerRef   string              `json:"customerRef"`
	Description   string              `json:"description"`
	PaymentMethod string              `json:"paymentMethod" binding:"required,oneof=CASH BANK CREDIT"`
	BankAccountID string              `json:"bankAccountID"`
	Counterparty  *BankDetailsPayload `json:"counterparty"`
}

// ExchangeTransactionResponse defines the data returned for an exchange
// transaction.
type ExchangeTransactionResponse struct {
	TransactionID string              `json:"transactionID"`
	Kind          string              `json:"kind"`
	CurrencyCode  string              `json:"currencyCode"`
	Amount        decimal.Decimal     `json:"amount"`
	Rate          decimal.Decimal     `json:"rate"`
	TotalLocal    decimal.Decimal     `json:"totalLocal"`
	CustomerName  string              `json:"customerName"`
	CustomerRef   string              `json:"customerRef"`
	Description   string              `json:"description,omitempty"`
	PaymentMethod string              `json:"paymentMethod"`
	BankAccountID string              `json:"bankAccountID,omitempty"`
	Counterparty  *BankDetailsPayload `json:"counterparty,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
}

// HoldingsResponse is the derived vault position of the desk.
type HoldingsResponse struct {
	Holdings map[string]decimal.Decimal `json:"holdings"`
}

// CurrencyVolumePayload is per-currency traded volume split by direction.
type CurrencyVolumePayload struct {
	Bought decimal.Decimal `json:"bought"`
	Sold   decimal.Decimal `json:"sold"`
}

// ExchangeStatsResponse summarizes desk activity for the dashboard.
type ExchangeStatsResponse struct {
	ByCurrency  map[string]CurrencyVolumePayload `json:"byCurrency"`
	LocalVolume decimal.Decimal                  `json:"localVolume"`
	Count       int                              `json:"count"`
}

// ToExchangeTransactionResponse converts a domain.ExchangeTransaction to its DTO.
func ToExchangeTransactionResponse(txn *domain.ExchangeTransaction) ExchangeTransactionResponse {
	resp := ExchangeTransactionResponse{
		TransactionID: txn.TransactionID,
		Kind:          string(txn.Kind),
		CurrencyCode:  txn.CurrencyCode,
		Amount:        txn.Amount,
		Rate:          txn.Rate,
		TotalLocal:    txn.TotalLocal,
		CustomerName:  txn.CustomerName,
		CustomerRef:   txn.CustomerRef,
		Description:   txn.Description,
		PaymentMethod: string(txn.PaymentMethod),
		BankAccountID: txn.BankAccountID,
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
	}
	if txn.Counterparty != nil {
		resp.Counterparty = &BankDetailsPayload{
			BankName:      txn.Counterparty.BankName,
			AccountNumber: txn.Counterparty.AccountNumber,
		}
	}
	return resp
}

// ToListExchangeTransactionResponse converts a slice of transactions to DTOs.
func ToListExchangeTransactionResponse(txns []domain.ExchangeTransaction) []ExchangeTransactionResponse {
	res := make([]ExchangeTransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToExchangeTransactionResponse(&txn)
	}
	return res
}

// ToHoldingsResponse converts a derived vault to its DTO.
func ToHoldingsResponse(vault domain.Vault) HoldingsResponse {
	return HoldingsResponse{Holdings: map[string]decimal.Decimal(vault)}
}

// ToExchangeStatsResponse converts domain.ExchangeStats to its DTO.
func ToExchangeStatsResponse(stats domain.ExchangeStats) ExchangeStatsResponse {
	byCurrency := make(map[string]CurrencyVolumePayload, len(stats.ByCurrency))
	for code, vol := range stats.ByCurrency {
		byCurrency[code] = CurrencyVolumePayload{Bought: vol.Bought, Sold: vol.Sold}
	}
	return ExchangeStatsResponse{
		ByCurrency:  byCurrency,
		LocalVolume: stats.LocalVolume,
		Count:       stats.Count,
	}
}
