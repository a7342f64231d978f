// Package debt implements the Debt Collector stage (spec.md §4.4):
// regular debt first, then the deferred amount scheduled for the deal's
// contract year, bounded by success_fees (not the retainer basis — the
// external retainer never flows through the engine).
package debt

import (
	"github.com/dealsyte/commissions-engine/internal/money"
	"github.com/dealsyte/commissions-engine/internal/types"
)

// Result carries the collected amount plus the mutations the caller applies
// to its copy of the contract state.
type Result struct {
	ContractYear      int
	RegularCollected  money.Amount
	DeferredCollected money.Amount
	DebtCollected     money.Amount

	CurrentDebtAfter money.Amount
	// DeferredSchedule is the post-collection deferred schedule (the
	// collected year's entry decremented, and removed once it reaches
	// zero).
	DeferredSchedule []types.DeferredScheduleEntry
	// DeferredSubscriptionFeeAfter is always zero: once a deal has run,
	// deferred_schedule[] is the canonical representation going forward
	// (SPEC_FULL.md §3's legacy-scalar precedence decision).
	DeferredSubscriptionFeeAfter money.Amount
}

// ContractYear computes the 1-based, 365-day contract-year ordinal
// (spec.md §4.4, §9: "Year 1 = days 0-364", no leap-aware calendar).
// Returns (0, false) when no contract start date is available — the
// caller then skips deferred collection entirely.
func ContractYear(dealDate types.Date, contractStart *types.Date) (int, bool) {
	if contractStart == nil {
		return 0, false
	}
	days := dealDate.DaysSince(*contractStart)
	if days < 0 {
		days = 0
	}
	return days/365 + 1, true
}

// Run collects regular debt then, if a contract year is known, the
// deferred amount scheduled for that year.
func Run(dealSuccessFees money.Amount, dealDate types.Date, contract types.Contract, state types.ContractState) Result {
	available := dealSuccessFees

	regular := money.Min(state.CurrentDebt, available)
	currentDebtAfter := state.CurrentDebt.Sub(regular)
	available = available.Sub(regular)

	schedule := effectiveDeferredSchedule(state)

	year, haveYear := ContractYear(dealDate, contract.ContractStartDate)
	var deferredCollected money.Amount
	if haveYear {
		idx, applicable := findDeferredEntry(schedule, year)
		if applicable {
			take := money.Min(schedule[idx].Amount, available)
			deferredCollected = take
			schedule[idx].Amount = schedule[idx].Amount.Sub(take)
			if schedule[idx].Amount.IsZero() {
				schedule = append(schedule[:idx], schedule[idx+1:]...)
			}
		}
	}

	return Result{
		ContractYear:      year,
		RegularCollected:  regular,
		DeferredCollected: deferredCollected,
		DebtCollected:     regular.Add(deferredCollected),
		CurrentDebtAfter:  currentDebtAfter,
		DeferredSchedule:  schedule,
	}
}

// effectiveDeferredSchedule resolves the deferred_schedule[] vs. legacy
// deferred_subscription_fee ambiguity the Open Questions left unresolved
// (spec.md §9), per the decision recorded in SPEC_FULL.md §3: the list
// takes precedence whenever it is non-empty; the legacy scalar is only
// consulted as a stand-in for a year-1 entry when the list is empty and the
// scalar is nonzero.
func effectiveDeferredSchedule(state types.ContractState) []types.DeferredScheduleEntry {
	if len(state.DeferredSchedule) > 0 {
		return append([]types.DeferredScheduleEntry(nil), state.DeferredSchedule...)
	}
	if state.DeferredSubscriptionFee.IsPositive() {
		return []types.DeferredScheduleEntry{{Year: 1, Amount: state.DeferredSubscriptionFee}}
	}
	return nil
}

func findDeferredEntry(schedule []types.DeferredScheduleEntry, year int) (int, bool) {
	for i, e := range schedule {
		if e.Year == year {
			return i, true
		}
	}
	return 0, false
}

// CreditGenerated applies spec.md §4.4's 100% conversion rule for standard
// contracts, and the PAYG no-conversion rule.
func CreditGenerated(isPayAsYouGo bool, debtCollected money.Amount) money.Amount {
	if isPayAsYouGo {
		return money.Zero
	}
	return debtCollected
}
