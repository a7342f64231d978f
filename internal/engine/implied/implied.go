// Package implied implements the Implied-Cost Calculator stage (spec.md
// §4.3). The four rate kinds — preferred, exempt, lehman, fixed — are
// modeled as a small sum type: each is a strategy capable of computing an
// implied total from a basis, and Select picks the first one that applies
// in the priority order spec.md pins (spec.md §9 "tagged variants for rate
// kinds").
package implied

import (
	"github.com/dealsyte/commissions-engine/internal/money"
	"github.com/dealsyte/commissions-engine/internal/types"
)

// Rates holds the configurable rates this stage applies (SPEC_FULL.md
// §1.2). The CLI and HTTP transport source these from config.DefaultsConfig
// at startup; callers that don't care about overrides can pass
// DefaultRates().
type Rates struct {
	// Exempt is the flat rate applied to an exempt deal (spec.md §4.3).
	Exempt money.Rate
}

// DefaultRates is the built-in fallback spec.md §4.3 pins absent any
// configuration override.
func DefaultRates() Rates {
	return Rates{Exempt: money.MustNewRate("0.015")}
}

// Strategy is the capability every rate kind shares: compute an implied
// total from the fee/implied-cost basis.
type Strategy interface {
	Compute(basis money.Amount) money.Amount
}

// preferredStrategy applies the deal-level override rate.
type preferredStrategy struct{ rate money.Rate }

func (s preferredStrategy) Compute(basis money.Amount) money.Amount { return basis.Mul(s.rate) }

// exemptStrategy applies the flat exempt rate.
type exemptStrategy struct{ rate money.Rate }

func (s exemptStrategy) Compute(basis money.Amount) money.Amount { return basis.Mul(s.rate) }

// fixedStrategy applies the contract's flat rate.
type fixedStrategy struct{ rate money.Rate }

func (s fixedStrategy) Compute(basis money.Amount) money.Amount { return basis.Mul(s.rate) }

// Select returns the strategy that applies to this deal/contract pair,
// following spec.md §4.3's priority order: preferred rate first, then
// exempt, then lehman (if configured), then fixed.
func Select(deal types.Deal, contract types.Contract, rates Rates) Strategy {
	switch {
	case deal.HasPreferredRate:
		return preferredStrategy{rate: deal.PreferredRate}
	case deal.IsDealExempt:
		return exemptStrategy{rate: rates.Exempt}
	case contract.RateType == types.RateTypeLehman:
		return lehmanStrategy{
			tiers:  contract.LehmanTiers,
			cursor: contract.AccumulatedSuccessFeesBeforeThisDeal,
		}
	default:
		// Reached only once validate.Run has confirmed fixed_rate was
		// supplied whenever rate_type is fixed (spec.md §4.1).
		return fixedStrategy{rate: *contract.FixedRate}
	}
}

// Run computes the implied total for this deal (spec.md §4.3: "basis =
// retainer_base, same rule as §4.2").
func Run(deal types.Deal, contract types.Contract, rates Rates) money.Amount {
	basis := deal.RetainerBase()
	return Select(deal, contract, rates).Compute(basis)
}
