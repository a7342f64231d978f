package types

import "github.com/dealsyte/commissions-engine/internal/money"

// RateType selects how the Implied-Cost Calculator prices a deal absent a
// preferred rate or exempt override (spec.md §4.3).
type RateType string

const (
	RateTypeFixed  RateType = "fixed"
	RateTypeLehman RateType = "lehman"
)

// LehmanTier is one band of a progressive Lehman rate schedule. Ranges are
// half-open [LowerBound, UpperBound); a nil UpperBound means "to infinity"
// (spec.md §3, §4.3).
type LehmanTier struct {
	LowerBound money.Amount  `json:"lower_bound"`
	UpperBound *money.Amount `json:"upper_bound"`
	Rate       money.Rate    `json:"rate"`
}

// Open reports whether the tier has no upper bound.
func (t LehmanTier) Open() bool { return t.UpperBound == nil }

// CostCapType selects the window a cost cap is measured against
// (spec.md §4.8, §9).
type CostCapType string

const (
	CostCapAnnual CostCapType = "annual"
	CostCapTotal  CostCapType = "total"
)

// Contract is the immutable per-call contract configuration (spec.md §3
// "Contract").
type Contract struct {
	RateType                       RateType     `json:"rate_type"`
	FixedRate                      *money.Rate  `json:"fixed_rate,omitempty"`
	LehmanTiers                    []LehmanTier `json:"lehman_tiers,omitempty"`
	AccumulatedSuccessFeesBeforeThisDeal money.Amount `json:"accumulated_success_fees_before_this_deal"`
	ContractStartDate              *Date        `json:"contract_start_date,omitempty"`
	IsPayAsYouGo                   bool         `json:"is_pay_as_you_go"`
	AnnualSubscription             money.Amount `json:"annual_subscription"`

	CostCapType   CostCapType   `json:"cost_cap_type,omitempty"`
	CostCapAmount *money.Amount `json:"cost_cap_amount,omitempty"`
}

// HasCostCap reports whether a cap is configured at all (spec.md §4.8).
func (c Contract) HasCostCap() bool {
	return c.CostCapType != "" && c.CostCapAmount != nil
}

// SubscriptionPayment is a scheduled future ARR prepayment that the
// Subscription Applicator may force-collect against implied cost
// (spec.md §3, §4.6).
type SubscriptionPayment struct {
	PaymentID  string       `json:"payment_id"`
	DueDate    Date         `json:"due_date"`
	AmountDue  money.Amount `json:"amount_due"`
	AmountPaid money.Amount `json:"amount_paid"`
}

// Remaining is the unpaid balance still owed on this scheduled payment.
func (p SubscriptionPayment) Remaining() money.Amount {
	return p.AmountDue.Sub(p.AmountPaid).ClampNonNegative()
}

// DeferredScheduleEntry is one contract-year's unpaid, carried-forward
// subscription amount (spec.md §3, §4.4).
type DeferredScheduleEntry struct {
	Year   int          `json:"year"`
	Amount money.Amount `json:"amount"`
}
