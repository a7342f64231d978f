// Package subscription implements the Subscription Applicator stage
// (spec.md §4.6): a standard-only forced prepayment of scheduled future
// subscription fees out of the implied cost remaining after credit.
package subscription

import (
	"sort"

	"github.com/dealsyte/commissions-engine/internal/money"
	"github.com/dealsyte/commissions-engine/internal/types"
)

// Result carries the updated payment list and what remains of the implied
// cost once subscription prepayment stops.
type Result struct {
	Payments                 []types.SubscriptionPayment
	AdvanceFeesCreated       money.Amount
	ImpliedAfterSubscription money.Amount
}

// Run sorts payments by due date ascending (stable, per spec.md §4.6) and
// forces prepayment against each in order until available runs out.
// PAYG contracts never carry future payments (validated at intake), so
// when engine.Process runs this stage for a PAYG contract the payment list
// is empty and the stage is a no-op that passes impliedAfterCredit through.
func Run(payments []types.SubscriptionPayment, impliedAfterCredit money.Amount) Result {
	out := append([]types.SubscriptionPayment(nil), payments...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.String() < out[j].DueDate.String()
	})

	available := impliedAfterCredit
	var advanceFeesCreated money.Amount

	for i := range out {
		if available.IsZero() {
			break
		}
		take := money.Min(out[i].Remaining(), available)
		if take.IsZero() {
			continue
		}
		out[i].AmountPaid = out[i].AmountPaid.Add(take)
		available = available.Sub(take)
		advanceFeesCreated = advanceFeesCreated.Add(take)
	}

	return Result{
		Payments:                 out,
		AdvanceFeesCreated:       advanceFeesCreated,
		ImpliedAfterSubscription: available,
	}
}
