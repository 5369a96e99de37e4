package domain

// BankAccount is reference data describing a company bank account and the
// business sectors it may settle. An empty EligibleSectors list means the
// account is unrestricted.
type BankAccount struct {
	AccountID       string   `json:"accountID"` // Primary Key (UUID)
	BankName        string   `json:"bankName"`
	AccountNumber   string   `json:"accountNumber"`
	EligibleSectors []Sector `json:"eligibleSectors"`
	AuditFields
}

// EligibleFor reports whether the account may settle transactions for the
// given sector.
func (a BankAccount) EligibleFor(sector Sector) bool {
	if len(a.EligibleSectors) == 0 {
		return true
	}
	for _, s := range a.EligibleSectors {
		if s == sector {
			return true
		}
	}
	return false
}
