package ledger

import (
	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
)

// ValidateBankAccount checks that a bank account may settle a transaction in
// the given sector. An account with no declared sectors is unrestricted.
func ValidateBankAccount(acc domain.BankAccount, sector domain.Sector) error {
	if !acc.EligibleFor(sector) {
		return &apperrors.IneligibleBankAccountError{AccountID: acc.AccountID, Sector: string(sector)}
	}
	return nil
}
