// Package assemble implements the Payout & State Assembler stage (spec.md
// §4.9): it nets the broker's payout, rolls the cumulative counters, and
// produces the successor ContractState for the caller to persist.
package assemble

import (
	"github.com/dealsyte/commissions-engine/internal/money"
	"github.com/dealsyte/commissions-engine/internal/types"
)

// Input collects every figure the assembler needs from the upstream
// stages. All fields are post-cap, final values.
type Input struct {
	SuccessFees money.Amount

	FinraFee        money.Amount
	DistributionFee money.Amount
	SourcingFee     money.Amount

	DebtCollected      money.Amount
	AdvanceFeesCreated money.Amount
	FinalisCommissions money.Amount
	ARRContribution    money.Amount // zero for standard contracts

	EnteredCommissionsMode bool
	PriorInCommissionsMode bool
}

// Result is the net payout plus the counter deltas the caller rolls into
// the persisted ContractState.
type Result struct {
	NetPayout                money.Amount
	TotalPaidThisContractYearDelta money.Amount
	TotalPaidAllTimeDelta          money.Amount
	IsNowInCommissionsMode         bool
}

// Run computes net_payout (spec.md §4.9) and the counter deltas to apply.
func Run(in Input) Result {
	charged := in.AdvanceFeesCreated.
		Add(in.FinalisCommissions).
		Add(in.ARRContribution)

	netPayout := in.SuccessFees.
		Sub(in.FinraFee).
		Sub(in.DistributionFee).
		Sub(in.SourcingFee).
		Sub(in.DebtCollected).
		Sub(charged).
		ClampNonNegative()

	return Result{
		NetPayout:                      netPayout,
		TotalPaidThisContractYearDelta: charged,
		TotalPaidAllTimeDelta:          charged,
		IsNowInCommissionsMode:         in.PriorInCommissionsMode || in.EnteredCommissionsMode,
	}
}

// ApplyToState folds a Result's deltas into a deep copy of the prior
// ContractState, alongside the other per-stage mutations (credit, debt,
// deferred schedule, payment list) already applied by the caller.
func ApplyToState(prior types.ContractState, res Result) types.ContractState {
	next := prior.Clone()
	next.TotalPaidThisContractYear = next.TotalPaidThisContractYear.Add(res.TotalPaidThisContractYearDelta)
	next.TotalPaidAllTime = next.TotalPaidAllTime.Add(res.TotalPaidAllTimeDelta)
	next.IsInCommissionsMode = res.IsNowInCommissionsMode
	return next
}
