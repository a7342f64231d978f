package types

import "github.com/dealsyte/commissions-engine/internal/money"

// Deal is the immutable per-call description of the transaction being
// processed (spec.md §3 "Deal"). Nothing in the pipeline mutates it.
type Deal struct {
	DealName   string     `json:"deal_name"`
	SuccessFees money.Amount `json:"success_fees"`
	DealDate   Date       `json:"deal_date"`

	IsDistributionFeeTrue bool `json:"is_distribution_fee_true"`
	IsSourcingFeeTrue     bool `json:"is_sourcing_fee_true"`
	IsDealExempt          bool `json:"is_deal_exempt"`

	HasFinraFee *bool `json:"has_finra_fee,omitempty"`

	ExternalRetainer       money.Amount `json:"external_retainer,omitempty"`
	HasExternalRetainer    bool         `json:"has_external_retainer,omitempty"`
	IncludeRetainerInFees  *bool        `json:"include_retainer_in_fees,omitempty"`

	HasPreferredRate bool       `json:"has_preferred_rate,omitempty"`
	PreferredRate    money.Rate `json:"preferred_rate,omitempty"`
}

// HasFinraFeeEnabled applies the configured default (spec.md §4.2) unless
// the deal explicitly overrides it.
func (d Deal) HasFinraFeeEnabled(enabledByDefault bool) bool {
	if d.HasFinraFee == nil {
		return enabledByDefault
	}
	return *d.HasFinraFee
}

// RetainerBase is the fee/implied-cost basis shared by §4.2 and §4.3:
// success_fees, plus the external retainer only when it exists AND the
// caller asked for it to be folded into the basis.
func (d Deal) RetainerBase() money.Amount {
	if d.HasExternalRetainer && d.IncludeRetainerInFees != nil && *d.IncludeRetainerInFees {
		return d.SuccessFees.Add(d.ExternalRetainer)
	}
	return d.SuccessFees
}
