// Package enginetest provides fixture builders for constructing Deal,
// Contract, and ContractState values in tests without repeating every
// field, modeled on the teacher's per-entity fixture builders
// (internal/testing/payment et al. in the XRPL node this repo grew from).
package enginetest

import (
	"github.com/dealsyte/commissions-engine/internal/money"
	"github.com/dealsyte/commissions-engine/internal/types"
)

// DealBuilder builds a types.Deal with sane defaults, overridden field by
// field via its fluent setters.
type DealBuilder struct {
	deal types.Deal
}

// NewDeal returns a builder seeded with a positive success_fees and a
// parsed deal date, the two fields every test needs.
func NewDeal(successFees string, dealDate string) *DealBuilder {
	return &DealBuilder{deal: types.Deal{
		DealName:    "test-deal",
		SuccessFees: money.MustNew(successFees),
		DealDate:    mustDate(dealDate),
	}}
}

func (b *DealBuilder) Name(name string) *DealBuilder {
	b.deal.DealName = name
	return b
}

func (b *DealBuilder) Distribution(on bool) *DealBuilder {
	b.deal.IsDistributionFeeTrue = on
	return b
}

func (b *DealBuilder) Sourcing(on bool) *DealBuilder {
	b.deal.IsSourcingFeeTrue = on
	return b
}

func (b *DealBuilder) Exempt(on bool) *DealBuilder {
	b.deal.IsDealExempt = on
	return b
}

func (b *DealBuilder) NoFinraFee() *DealBuilder {
	off := false
	b.deal.HasFinraFee = &off
	return b
}

func (b *DealBuilder) Preferred(rate string) *DealBuilder {
	b.deal.HasPreferredRate = true
	b.deal.PreferredRate = money.MustNewRate(rate)
	return b
}

func (b *DealBuilder) Retainer(amount string, includeInFees bool) *DealBuilder {
	b.deal.HasExternalRetainer = true
	b.deal.ExternalRetainer = money.MustNew(amount)
	b.deal.IncludeRetainerInFees = &includeInFees
	return b
}

func (b *DealBuilder) Build() types.Deal { return b.deal }

// ContractBuilder builds a types.Contract.
type ContractBuilder struct {
	contract types.Contract
}

// NewFixedContract builds a fixed-rate, standard (non-PAYG) contract.
func NewFixedContract(rate string) *ContractBuilder {
	r := money.MustNewRate(rate)
	return &ContractBuilder{contract: types.Contract{
		RateType:  types.RateTypeFixed,
		FixedRate: &r,
	}}
}

// NewLehmanContract builds a Lehman-tiered contract.
func NewLehmanContract(tiers ...types.LehmanTier) *ContractBuilder {
	return &ContractBuilder{contract: types.Contract{
		RateType:     types.RateTypeLehman,
		LehmanTiers:  tiers,
	}}
}

func (b *ContractBuilder) AccumulatedBefore(amount string) *ContractBuilder {
	b.contract.AccumulatedSuccessFeesBeforeThisDeal = money.MustNew(amount)
	return b
}

func (b *ContractBuilder) StartDate(date string) *ContractBuilder {
	d := mustDate(date)
	b.contract.ContractStartDate = &d
	return b
}

func (b *ContractBuilder) PayAsYouGo(annualSubscription string) *ContractBuilder {
	b.contract.IsPayAsYouGo = true
	b.contract.AnnualSubscription = money.MustNew(annualSubscription)
	return b
}

func (b *ContractBuilder) CostCap(capType types.CostCapType, amount string) *ContractBuilder {
	b.contract.CostCapType = capType
	amt := money.MustNew(amount)
	b.contract.CostCapAmount = &amt
	return b
}

func (b *ContractBuilder) Build() types.Contract { return b.contract }

// StateBuilder builds a types.ContractState.
type StateBuilder struct {
	state types.ContractState
}

// NewState returns a builder for a zeroed, standard-contract state.
func NewState() *StateBuilder {
	return &StateBuilder{}
}

func (b *StateBuilder) Credit(amount string) *StateBuilder {
	b.state.CurrentCredit = money.MustNew(amount)
	return b
}

func (b *StateBuilder) Debt(amount string) *StateBuilder {
	b.state.CurrentDebt = money.MustNew(amount)
	return b
}

func (b *StateBuilder) InCommissionsMode(on bool) *StateBuilder {
	b.state.IsInCommissionsMode = on
	return b
}

func (b *StateBuilder) TotalPaidThisContractYear(amount string) *StateBuilder {
	b.state.TotalPaidThisContractYear = money.MustNew(amount)
	return b
}

func (b *StateBuilder) TotalPaidAllTime(amount string) *StateBuilder {
	b.state.TotalPaidAllTime = money.MustNew(amount)
	return b
}

func (b *StateBuilder) PaygAccumulated(amount string) *StateBuilder {
	b.state.PaygCommissionsAccumulated = money.MustNew(amount)
	return b
}

func (b *StateBuilder) DeferredForYear(year int, amount string) *StateBuilder {
	b.state.DeferredSchedule = append(b.state.DeferredSchedule, types.DeferredScheduleEntry{
		Year:   year,
		Amount: money.MustNew(amount),
	})
	return b
}

func (b *StateBuilder) FuturePayment(id, dueDate, amountDue string) *StateBuilder {
	b.state.FutureSubscriptionFees = append(b.state.FutureSubscriptionFees, types.SubscriptionPayment{
		PaymentID: id,
		DueDate:   mustDate(dueDate),
		AmountDue: money.MustNew(amountDue),
	})
	return b
}

func (b *StateBuilder) Build() types.ContractState { return b.state }

// Tier is a convenience constructor for an open (upper_bound == nil) or
// closed Lehman tier.
func Tier(lower string, upper *string, rate string) types.LehmanTier {
	t := types.LehmanTier{
		LowerBound: money.MustNew(lower),
		Rate:       money.MustNewRate(rate),
	}
	if upper != nil {
		u := money.MustNew(*upper)
		t.UpperBound = &u
	}
	return t
}

func mustDate(s string) types.Date {
	d, err := types.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
