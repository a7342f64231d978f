// Package validate implements the Validator stage (spec.md §4.1): it
// rejects malformed input before any arithmetic begins. Every rule is
// checked independently and all violations are reported together, rather
// than stopping at the first failure — callers correcting a request get the
// whole list in one round trip.
package validate

import (
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/dealsyte/commissions-engine/internal/engineerr"
	"github.com/dealsyte/commissions-engine/internal/types"
)

// Request bundles the three top-level inputs the transport decodes
// (spec.md §6).
type Request struct {
	Deal     types.Deal
	Contract types.Contract
	State    types.ContractState
}

// Run checks every rule in spec.md §4.1 and returns nil if the request may
// proceed. A single violation is returned as its own field-level
// *engineerr.Error; several are joined into one aggregated *engineerr.Error.
func Run(req Request) error {
	var errs error

	errs = multierr.Append(errs, checkNonNegative(req))
	errs = multierr.Append(errs, checkRates(req))
	errs = multierr.Append(errs, checkRateType(req))
	errs = multierr.Append(errs, checkRetainerFlag(req))
	errs = multierr.Append(errs, checkPayAsYouGo(req))

	if errs == nil {
		return nil
	}

	all := multierr.Errors(errs)
	if len(all) == 1 {
		return all[0]
	}

	msgs := make([]string, 0)
	for _, e := range all {
		msgs = append(msgs, e.Error())
	}
	return engineerr.ValidationMessage(strings.Join(msgs, "; "))
}

func checkNonNegative(req Request) error {
	var errs error
	if !req.Deal.SuccessFees.IsPositive() {
		errs = multierr.Append(errs, fieldErr("success_fees", "must be greater than zero"))
	}
	if req.Deal.ExternalRetainer.IsNegative() {
		errs = multierr.Append(errs, fieldErr("external_retainer", "must not be negative"))
	}
	if req.State.CurrentCredit.IsNegative() {
		errs = multierr.Append(errs, fieldErr("state.current_credit", "must not be negative"))
	}
	if req.State.CurrentDebt.IsNegative() {
		errs = multierr.Append(errs, fieldErr("state.current_debt", "must not be negative"))
	}
	for _, p := range req.State.FutureSubscriptionFees {
		if p.AmountDue.IsNegative() {
			errs = multierr.Append(errs, fieldErr("future_subscription_fees["+p.PaymentID+"].amount_due", "must not be negative"))
		}
		if p.AmountPaid.IsNegative() {
			errs = multierr.Append(errs, fieldErr("future_subscription_fees["+p.PaymentID+"].amount_paid", "must not be negative"))
		}
		if p.AmountPaid.GreaterThan(p.AmountDue) {
			errs = multierr.Append(errs, fieldErr("future_subscription_fees["+p.PaymentID+"].amount_paid", "must not exceed amount_due"))
		}
	}
	return errs
}

func checkRates(req Request) error {
	var errs error
	if req.Contract.RateType == types.RateTypeFixed && req.Contract.FixedRate != nil && !req.Contract.FixedRate.InRange() {
		errs = multierr.Append(errs, fieldErr("fixed_rate", "must be in [0,1]"))
	}
	if req.Deal.HasPreferredRate && !req.Deal.PreferredRate.InRange() {
		errs = multierr.Append(errs, fieldErr("preferred_rate", "must be in [0,1]"))
	}
	for i, tier := range req.Contract.LehmanTiers {
		if !tier.Rate.InRange() {
			errs = multierr.Append(errs, fieldErr(tierField(i, "rate"), "must be in [0,1]"))
		}
	}
	return errs
}

func checkRateType(req Request) error {
	switch req.Contract.RateType {
	case types.RateTypeFixed:
		if req.Contract.FixedRate == nil {
			return fieldErr("fixed_rate", "required when rate_type is fixed")
		}
	case types.RateTypeLehman:
		if len(req.Contract.LehmanTiers) == 0 {
			return fieldErr("lehman_tiers", "must be non-empty when rate_type is lehman")
		}
	default:
		return fieldErr("rate_type", "must be one of: fixed, lehman")
	}
	return nil
}

func checkRetainerFlag(req Request) error {
	if req.Deal.HasExternalRetainer && req.Deal.IncludeRetainerInFees == nil {
		return fieldErr("include_retainer_in_fees", "must be explicitly present when has_external_retainer is true")
	}
	return nil
}

func checkPayAsYouGo(req Request) error {
	var errs error
	if req.Contract.IsPayAsYouGo {
		if !req.State.CurrentCredit.IsZero() {
			errs = multierr.Append(errs, fieldErr("state.current_credit", "must be zero for a pay-as-you-go contract"))
		}
		if len(req.State.FutureSubscriptionFees) != 0 {
			errs = multierr.Append(errs, fieldErr("state.future_subscription_fees", "must be empty for a pay-as-you-go contract"))
		}
	}
	return errs
}

func fieldErr(field, reason string) error {
	return engineerr.Validation(field, reason)
}

func tierField(i int, attr string) string {
	return "lehman_tiers[" + strconv.Itoa(i) + "]." + attr
}
