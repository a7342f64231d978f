// Package commission implements the Commission Calculator stage (spec.md
// §4.7): the standard path charges the implied cost left after subscription
// prepayment as pure commission; the PAYG path splits implied cost into an
// ARR contribution and an excess, tracked against an accumulating target.
package commission

import "github.com/dealsyte/commissions-engine/internal/money"

// StandardResult is the standard-contract outcome.
type StandardResult struct {
	FinalisCommissions   money.Amount
	EnteredCommissionsMode bool
}

// Standard charges the residual implied cost as commission. The contract
// "graduates" into commissions mode once it has a positive residual after
// subscription prepayment, or was already in that mode (spec.md §4.7).
func Standard(impliedAfterSubscription money.Amount, alreadyInCommissionsMode bool) StandardResult {
	return StandardResult{
		FinalisCommissions:     impliedAfterSubscription,
		EnteredCommissionsMode: impliedAfterSubscription.IsPositive() || alreadyInCommissionsMode,
	}
}

// PAYGResult is the PAYG-contract outcome. Excess is what the engine
// reports as finalis_commissions — the ARR contribution is tracked
// separately in the payg_tracking response block (spec.md §4.7, §6).
type PAYGResult struct {
	ARRContribution        money.Amount
	Excess                 money.Amount
	AccumulatedAfter       money.Amount
	EnteredCommissionsMode bool
}

// PAYG splits impliedTotal into an ARR contribution (bounded by what's left
// to reach arrTarget) and an excess, per spec.md §4.7. When the contract is
// already in commissions mode, the entire implied total is excess and no
// further ARR is tracked.
func PAYG(impliedTotal, arrTarget, accumulated money.Amount, alreadyInCommissionsMode bool) PAYGResult {
	if alreadyInCommissionsMode {
		return PAYGResult{
			Excess:                 impliedTotal,
			AccumulatedAfter:       accumulated,
			EnteredCommissionsMode: true,
		}
	}

	remainingARR := arrTarget.Sub(accumulated).ClampNonNegative()
	arrContribution := money.Min(impliedTotal, remainingARR)
	excess := impliedTotal.Sub(arrContribution)
	accumulatedAfter := accumulated.Add(arrContribution)

	return PAYGResult{
		ARRContribution:        arrContribution,
		Excess:                 excess,
		AccumulatedAfter:       accumulatedAfter,
		EnteredCommissionsMode: accumulatedAfter.GreaterThanOrEqual(arrTarget),
	}
}
