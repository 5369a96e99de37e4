package ledger

import (
	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
)

// AggregateSite reduces site transactions into income, expense, balance and
// credit-exposure totals. There is no non-negativity rule here: a site may
// legitimately run at a deficit. Malformed records abort the reduction.
func AggregateSite(txs []domain.SiteTransaction) (domain.SiteSummary, error) {
	var summary domain.SiteSummary
	for _, tx := range txs {
		if err := checkSiteTransaction(tx); err != nil {
			return domain.SiteSummary{}, err
		}
		switch tx.Kind {
		case domain.SiteIncome:
			summary.Income = summary.Income.Add(tx.Amount)
			if tx.PaymentMethod == domain.PaymentCredit {
				summary.CreditIncome = summary.CreditIncome.Add(tx.Amount)
			}
		case domain.SiteExpense:
			summary.Expense = summary.Expense.Add(tx.Amount)
			if tx.PaymentMethod == domain.PaymentCredit {
				summary.CreditExpense = summary.CreditExpense.Add(tx.Amount)
			}
		}
	}
	summary.Balance = summary.Income.Sub(summary.Expense)
	return summary, nil
}

// AggregateBySite produces the project-level breakdown: one summary per
// site ID present in the history.
func AggregateBySite(txs []domain.SiteTransaction) (map[string]domain.SiteSummary, error) {
	grouped := map[string][]domain.SiteTransaction{}
	for _, tx := range txs {
		grouped[tx.SiteID] = append(grouped[tx.SiteID], tx)
	}
	out := make(map[string]domain.SiteSummary, len(grouped))
	for siteID, siteTxs := range grouped {
		summary, err := AggregateSite(siteTxs)
		if err != nil {
			return nil, err
		}
		out[siteID] = summary
	}
	return out, nil
}

func checkSiteTransaction(tx domain.SiteTransaction) error {
	if tx.Kind != domain.SiteIncome && tx.Kind != domain.SiteExpense {
		return &apperrors.MalformedRecordError{Record: "site transaction", Field: "kind", Reason: "must be INCOME or EXPENSE"}
	}
	if !tx.Amount.IsPositive() {
		return &apperrors.MalformedRecordError{Record: "site transaction", Field: "amount", Reason: "must be positive"}
	}
	return nil
}
