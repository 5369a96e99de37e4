package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SiteStatus is the lifecycle state of a construction site.
type SiteStatus string

const (
	SiteActive    SiteStatus = "Active"
	SiteCompleted SiteStatus = "Completed"
	SiteOnHold    SiteStatus = "On Hold"
)

// Site is a construction project that income and expenses are booked against.
type Site struct {
	SiteID string     `json:"siteID"` // Primary Key (UUID)
	Name   string     `json:"name"`
	Status SiteStatus `json:"status"`
	AuditFields
}

// SiteTransactionKind indicates the direction of a site cash flow.
type SiteTransactionKind string

const (
	SiteIncome  SiteTransactionKind = "INCOME"
	SiteExpense SiteTransactionKind = "EXPENSE"
)

// SiteTransaction is one income or expense entry for a construction site.
type SiteTransaction struct {
	TransactionID string              `json:"transactionID"` // Primary Key (UUID)
	SiteID        string              `json:"siteID"`
	Kind          SiteTransactionKind `json:"kind"`
	Amount        decimal.Decimal     `json:"amount"` // Positive
	Date          time.Time           `json:"date"`
	Description   string              `json:"description,omitempty"`
	PaymentMethod PaymentMethod       `json:"paymentMethod"`
	BankAccountID string              `json:"bankAccountID,omitempty"`
	ExternalBank  *BankDetails        `json:"externalBank,omitempty"`
	AuditFields
}

// SiteSummary is the aggregated financial position of one or more sites.
// Balance may legitimately be negative: a project can run at a deficit.
type SiteSummary struct {
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	Balance       decimal.Decimal `json:"balance"`
	CreditIncome  decimal.Decimal `json:"creditIncome"`
	CreditExpense decimal.Decimal `json:"creditExpense"`
}
