// Package costcap implements the Cost-Cap Enforcer stage (spec.md §4.8): it
// clamps the chargeable total (commissions + PAYG ARR contribution) against
// an annual or lifetime ceiling. Advance subscription prepayments and fixed
// service fees are never touched by the cap.
package costcap

import (
	"github.com/dealsyte/commissions-engine/internal/money"
	"github.com/dealsyte/commissions-engine/internal/types"
)

// Input is the pre-cap chargeable amount, split the way spec.md §4.8
// truncates it in priority order for PAYG: excess first, then ARR.
type Input struct {
	Contract types.Contract
	// PaidSoFar is total_paid_this_contract_year (annual cap) or
	// total_paid_all_time (total cap).
	PaidSoFar money.Amount
	// AdvanceFeesCreated already committed against the available window
	// ahead of commissions/ARR (spec.md §4.8: "advance fees take
	// priority").
	AdvanceFeesCreated money.Amount
	// Commissions and ARRContribution are the pre-cap amounts. For a
	// standard deal ARRContribution is always zero.
	Commissions     money.Amount
	ARRContribution money.Amount
}

// Result is the post-cap chargeable split plus how much was trimmed.
type Result struct {
	Commissions            money.Amount
	ARRContribution        money.Amount
	AmountNotChargedDueToCap money.Amount
}

// Run applies the cap if one is configured; otherwise it is a no-op that
// passes the pre-cap amounts through unchanged.
func Run(in Input) Result {
	if !in.Contract.HasCostCap() {
		return Result{Commissions: in.Commissions, ARRContribution: in.ARRContribution}
	}

	available := in.Contract.CostCapAmount.Sub(in.PaidSoFar).ClampNonNegative()
	availableForChargeable := available.Sub(in.AdvanceFeesCreated).ClampNonNegative()

	preCapTotal := in.Commissions.Add(in.ARRContribution)
	chargeable := money.Min(preCapTotal, availableForChargeable)

	// PAYG truncation order (spec.md §4.8): when the cap forces a cut,
	// excess is reduced first and ARR last — so ARR is funded first out
	// of the available chargeable budget, and whatever remains goes to
	// excess/commissions.
	postARR := money.Min(in.ARRContribution, chargeable)
	postCommissions := chargeable.Sub(postARR)
	if postCommissions.GreaterThan(in.Commissions) {
		postCommissions = in.Commissions
	}

	return Result{
		Commissions:              postCommissions,
		ARRContribution:          postARR,
		AmountNotChargedDueToCap: preCapTotal.Sub(postCommissions.Add(postARR)),
	}
}
