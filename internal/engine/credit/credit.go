// Package credit implements the Credit Applicator stage (spec.md §4.5):
// standard contracts apply existing + newly generated credit against the
// implied cost; PAYG contracts never carry credit, so this stage is a
// no-op for them.
package credit

import "github.com/dealsyte/commissions-engine/internal/money"

// Result carries the credit consumed and the implied cost remaining after
// applying it.
type Result struct {
	CreditUsed        money.Amount
	ImpliedAfterCredit money.Amount
	CreditRemaining    money.Amount
}

// Run applies available credit (current + generated this deal) against the
// implied total. Pass isPayAsYouGo=true to get the PAYG no-op.
func Run(isPayAsYouGo bool, currentCredit, impliedTotal money.Amount) Result {
	if isPayAsYouGo {
		return Result{
			ImpliedAfterCredit: impliedTotal,
			CreditRemaining:    currentCredit,
		}
	}

	used := money.Min(currentCredit, impliedTotal)
	return Result{
		CreditUsed:         used,
		ImpliedAfterCredit: impliedTotal.Sub(used),
		CreditRemaining:    currentCredit.Sub(used),
	}
}
