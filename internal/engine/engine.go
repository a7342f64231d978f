// Package engine wires the nine pipeline stages (spec.md §2) into the single
// Process entry point. Each stage lives in its own sub-package as a pure
// function; this package owns the ordering plus the glue between stages
// (adding generated credit to current credit, re-checking PAYG coverage
// after the cost cap, and the payg_tracking figures)
// (spec.md §9: "pure functions that take and return an immutable context,
// rather than methods that mutate a shared object").
package engine

import (
	"github.com/dealsyte/commissions-engine/internal/engine/assemble"
	"github.com/dealsyte/commissions-engine/internal/engine/commission"
	"github.com/dealsyte/commissions-engine/internal/engine/costcap"
	"github.com/dealsyte/commissions-engine/internal/engine/credit"
	"github.com/dealsyte/commissions-engine/internal/engine/debt"
	"github.com/dealsyte/commissions-engine/internal/engine/fees"
	"github.com/dealsyte/commissions-engine/internal/engine/implied"
	"github.com/dealsyte/commissions-engine/internal/engine/subscription"
	"github.com/dealsyte/commissions-engine/internal/engine/validate"
	"github.com/dealsyte/commissions-engine/internal/money"
	"github.com/dealsyte/commissions-engine/internal/types"
)

// Rates aggregates the fee and implied-cost calculators' configurable
// rates (SPEC_FULL.md §1.2's engine-wide defaults; the validator does not
// use them). A caller that omits Rates on Request gets DefaultRates().
type Rates struct {
	Fees    fees.Rates
	Implied implied.Rates
}

// DefaultRates is the built-in fallback absent any configuration override.
func DefaultRates() Rates {
	return Rates{Fees: fees.DefaultRates(), Implied: implied.DefaultRates()}
}

// Request bundles one deal's full input (spec.md §6 "transport boundary").
type Request struct {
	Deal     types.Deal
	Contract types.Contract
	State    types.ContractState
	// Rates overrides the engine's built-in fee/implied-cost rates. The CLI
	// and HTTP transport populate this from config.DefaultsConfig at
	// startup; nil uses DefaultRates().
	Rates *Rates
}

// Result is the engine's complete output: the caller-facing Response plus
// the successor ContractState to persist (spec.md §6: "the engine produces
// the successor state, the caller stores it").
type Result struct {
	Response types.Response
	State    types.ContractState
}

// Process runs the full pipeline against a single deal (spec.md §2).
// Inputs are never mutated; Request.State is deep-copied before any stage
// runs (spec.md §5 "inputs are defensively deep-copied").
func Process(req Request) (Result, error) {
	if err := validate.Run(validate.Request{Deal: req.Deal, Contract: req.Contract, State: req.State}); err != nil {
		return Result{}, err
	}

	state := req.State.Clone()

	rates := DefaultRates()
	if req.Rates != nil {
		rates = *req.Rates
	}

	feeRes := fees.Run(req.Deal, rates.Fees)
	impliedTotal := implied.Run(req.Deal, req.Contract, rates.Implied)

	debtRes := debt.Run(req.Deal.SuccessFees, req.Deal.DealDate, req.Contract, state)
	creditGenerated := debt.CreditGenerated(req.Contract.IsPayAsYouGo, debtRes.DebtCollected)
	currentCreditAfterGeneration := state.CurrentCredit.Add(creditGenerated)

	creditRes := credit.Run(req.Contract.IsPayAsYouGo, currentCreditAfterGeneration, impliedTotal)

	// PAYG contracts never carry future subscription fees or credit
	// (validated at intake), so this stage is naturally a no-op for them:
	// implied_after_subscription passes straight through.
	subRes := subscription.Run(state.FutureSubscriptionFees, creditRes.ImpliedAfterCredit)

	var (
		finalisCommissions    money.Amount
		arrContribution       money.Amount
		enteredCommissionsMode bool
		paygAccumulatedAfter  money.Amount
	)

	if req.Contract.IsPayAsYouGo {
		paygRes := commission.PAYG(impliedTotal, req.Contract.AnnualSubscription, state.PaygCommissionsAccumulated, state.IsInCommissionsMode)
		finalisCommissions = paygRes.Excess
		arrContribution = paygRes.ARRContribution
		enteredCommissionsMode = paygRes.EnteredCommissionsMode
		paygAccumulatedAfter = paygRes.AccumulatedAfter
	} else {
		stdRes := commission.Standard(subRes.ImpliedAfterSubscription, state.IsInCommissionsMode)
		finalisCommissions = stdRes.FinalisCommissions
		enteredCommissionsMode = stdRes.EnteredCommissionsMode
	}

	capRes := costcap.Run(costcap.Input{
		Contract:           req.Contract,
		PaidSoFar:          paidSoFar(req.Contract, state),
		AdvanceFeesCreated: subRes.AdvanceFeesCreated,
		Commissions:        finalisCommissions,
		ARRContribution:    arrContribution,
	})

	if req.Contract.IsPayAsYouGo {
		// A cap that truncates ARR coverage below arr_target keeps the
		// contract out of commissions mode even though commissions were
		// computed pre-cap (spec.md §4.8).
		if paygAccumulatedAfter.Sub(arrContribution).Add(capRes.ARRContribution).LessThan(req.Contract.AnnualSubscription) {
			enteredCommissionsMode = false
		}
		paygAccumulatedAfter = paygAccumulatedAfter.Sub(arrContribution).Add(capRes.ARRContribution)
	}

	assembleRes := assemble.Run(assemble.Input{
		SuccessFees:            req.Deal.SuccessFees,
		FinraFee:               feeRes.FinraFee,
		DistributionFee:        feeRes.DistributionFee,
		SourcingFee:            feeRes.SourcingFee,
		DebtCollected:          debtRes.DebtCollected,
		AdvanceFeesCreated:     subRes.AdvanceFeesCreated,
		FinalisCommissions:     capRes.Commissions,
		ARRContribution:        capRes.ARRContribution,
		EnteredCommissionsMode: enteredCommissionsMode,
		PriorInCommissionsMode: state.IsInCommissionsMode,
	})

	state.CurrentDebt = debtRes.CurrentDebtAfter
	state.DeferredSchedule = debtRes.DeferredSchedule
	state.DeferredSubscriptionFee = debtRes.DeferredSubscriptionFeeAfter
	state.CurrentCredit = creditRes.CreditRemaining
	state.FutureSubscriptionFees = subRes.Payments
	state.PaygCommissionsAccumulated = paygAccumulatedAfter
	state = assemble.ApplyToState(state, assembleRes)

	resp := types.Response{
		DealSummary: types.DealSummary{
			DealName:     req.Deal.DealName,
			SuccessFees:  req.Deal.SuccessFees,
			DealDate:     req.Deal.DealDate,
			ContractYear: debtRes.ContractYear,
		},
		Calculations: types.Calculations{
			FinraFee:                 feeRes.FinraFee,
			DistributionFee:          feeRes.DistributionFee,
			SourcingFee:              feeRes.SourcingFee,
			ImpliedTotal:             impliedTotal,
			DebtCollected:            debtRes.DebtCollected,
			CreditUsed:               creditRes.CreditUsed,
			ImpliedAfterCredit:       creditRes.ImpliedAfterCredit,
			AdvanceFeesCreated:       subRes.AdvanceFeesCreated,
			ImpliedAfterSubscription: subRes.ImpliedAfterSubscription,
			FinalisCommissions:       capRes.Commissions,
			AmountNotChargedDueToCap: capRes.AmountNotChargedDueToCap,
			NetPayout:                assembleRes.NetPayout,
		},
		StateChanges: types.StateChanges{
			DebtCollected:          debtRes.DebtCollected,
			DebtRemaining:          debtRes.CurrentDebtAfter,
			CreditGenerated:        creditGenerated,
			CreditUsed:             creditRes.CreditUsed,
			CreditRemaining:        creditRes.CreditRemaining,
			EnteredCommissionsMode: enteredCommissionsMode,
			IsNowInCommissionsMode: assembleRes.IsNowInCommissionsMode,
		},
		UpdatedFuturePayments: subRes.Payments,
		UpdatedContractState: types.UpdatedContractState{
			CurrentCredit:             state.CurrentCredit,
			CurrentDebt:               state.CurrentDebt,
			IsInCommissionsMode:       state.IsInCommissionsMode,
			TotalPaidThisContractYear: state.TotalPaidThisContractYear,
			TotalPaidAllTime:          state.TotalPaidAllTime,
		},
	}

	if req.Contract.IsPayAsYouGo {
		remaining := req.Contract.AnnualSubscription.Sub(paygAccumulatedAfter).ClampNonNegative()
		resp.PaygTracking = &types.PaygTracking{
			ARRTargetAmount:            req.Contract.AnnualSubscription,
			ARRContributionThisDeal:    capRes.ARRContribution,
			FinalisCommissionsThisDeal: capRes.Commissions,
			CommissionsAccumulated:     paygAccumulatedAfter,
			RemainingToCoverARR:        remaining,
			ARRCoveragePercentage:      money.Percentage(paygAccumulatedAfter, req.Contract.AnnualSubscription),
		}
	}

	return Result{Response: resp, State: state}, nil
}

func paidSoFar(contract types.Contract, state types.ContractState) money.Amount {
	if contract.CostCapType == types.CostCapTotal {
		return state.TotalPaidAllTime
	}
	return state.TotalPaidThisContractYear
}
