// Package fees implements the Fee Calculator stage (spec.md §4.2): FINRA,
// distribution, and sourcing fees. These are service fees deducted from the
// broker's gross payout; they never feed debt or credit.
package fees

import (
	"github.com/dealsyte/commissions-engine/internal/money"
	"github.com/dealsyte/commissions-engine/internal/types"
)

// Rates holds the configurable rates this stage applies (SPEC_FULL.md §1.2's
// engine-wide defaults).
// The CLI and HTTP transport source these from config.DefaultsConfig at
// startup; callers that don't care about overrides can pass DefaultRates().
type Rates struct {
	// Finra is the regulatory transaction fee rate applied to the basis when
	// a deal has FINRA fee enabled (spec.md §4.2).
	Finra money.Rate
	// DistributionSourcing is the rate applied to the basis for either the
	// distribution fee or the sourcing fee when enabled (spec.md §4.2).
	DistributionSourcing money.Rate
	// FinraEnabledByDefault is applied when a deal omits has_finra_fee
	// (spec.md §4.2).
	FinraEnabledByDefault bool
}

// DefaultRates is the built-in fallback spec.md §4.2 pins absent any
// configuration override.
func DefaultRates() Rates {
	return Rates{
		Finra:                 money.MustNewRate("0.004732"),
		DistributionSourcing:  money.MustNewRate("0.10"),
		FinraEnabledByDefault: true,
	}
}

// Result holds the three fixed service fees this stage produces.
type Result struct {
	FinraFee        money.Amount
	DistributionFee money.Amount
	SourcingFee     money.Amount
}

// Run computes the fixed service fees for the deal over its retainer basis.
func Run(deal types.Deal, rates Rates) Result {
	basis := deal.RetainerBase()

	var res Result
	if deal.HasFinraFeeEnabled(rates.FinraEnabledByDefault) {
		res.FinraFee = basis.Mul(rates.Finra)
	}
	if deal.IsDistributionFeeTrue {
		res.DistributionFee = basis.Mul(rates.DistributionSourcing)
	}
	if deal.IsSourcingFeeTrue {
		res.SourcingFee = basis.Mul(rates.DistributionSourcing)
	}
	return res
}
