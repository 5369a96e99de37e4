package dto

import (
	"time"

	"github.com/unimanage/backoffice/internal/core/domain"
)

// CreateBankAccountRequest defines the data needed to register a company
// bank account. An empty eligibleSectors list means unrestricted.
type CreateBankAccountRequest struct {
	BankName        string   `json:"bankName" binding:"required"`
	AccountNumber   string   `json:"accountNumber" binding:"required"`
	EligibleSectors []string `json:"eligibleSectors" binding:"dive,oneof=exchange pharmacy construction"`
}

// BankAccountResponse defines the data returned for a bank account.
type BankAccountResponse struct {
	AccountID       string    `json:"accountID"`
	BankName        string    `json:"bankName"`
	AccountNumber   string    `json:"accountNumber"`
	EligibleSectors []string  `json:"eligibleSectors"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToBankAccountResponse converts a domain.BankAccount to its DTO.
func ToBankAccountResponse(acc *domain.BankAccount) BankAccountResponse {
	sectors := make([]string, len(acc.EligibleSectors))
	for i, s := range acc.EligibleSectors {
		sectors[i] = string(s)
	}
	return BankAccountResponse{
		AccountID:       acc.AccountID,
		BankName:        acc.BankName,
		AccountNumber:   acc.AccountNumber,
		EligibleSectors: sectors,
		CreatedAt:       acc.CreatedAt,
	}
}

// ToListBankAccountResponse converts a slice of bank accounts to DTOs.
func ToListBankAccountResponse(accounts []domain.BankAccount) []BankAccountResponse {
	res := make([]BankAccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToBankAccountResponse(&acc)
	}
	return res
}
