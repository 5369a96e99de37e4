package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
	"github.com/unimanage/backoffice/internal/core/ledger"
)

func TestValidateBankAccount(t *testing.T) {
	pharmacyOnly := domain.BankAccount{
		AccountID:       "acc-1",
		BankName:        "Awash Bank",
		EligibleSectors: []domain.Sector{domain.SectorPharmacy},
	}
	unrestricted := domain.BankAccount{AccountID: "acc-2", BankName: "CBE"}

	assert.NoError(t, ledger.ValidateBankAccount(pharmacyOnly, domain.SectorPharmacy))
	assert.NoError(t, ledger.ValidateBankAccount(unrestricted, domain.SectorConstruction))

	err := ledger.ValidateBankAccount(pharmacyOnly, domain.SectorConstruction)
	var ineligible *apperrors.IneligibleBankAccountError
	require.ErrorAs(t, err, &ineligible)
	assert.Equal(t, "acc-1", ineligible.AccountID)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
