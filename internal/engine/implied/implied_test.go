package implied

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dealsyte/commissions-engine/internal/money"
	"github.com/dealsyte/commissions-engine/internal/types"
)

func fixedRate(s string) *money.Rate {
	r := money.MustNewRate(s)
	return &r
}

func TestRun_PreferredOverridesLehman(t *testing.T) {
	upper := money.MustNew("1000000")
	deal := types.Deal{
		SuccessFees:      money.MustNew("2000000"),
		HasPreferredRate: true,
		PreferredRate:    money.MustNewRate("0.02"),
	}
	contract := types.Contract{
		RateType: types.RateTypeLehman,
		LehmanTiers: []types.LehmanTier{
			{LowerBound: money.Zero, UpperBound: &upper, Rate: money.MustNewRate("0.05")},
			{LowerBound: upper, UpperBound: nil, Rate: money.MustNewRate("0.03")},
		},
	}
	assert.Equal(t, "40000.00", Run(deal, contract, DefaultRates()).String())
}

func TestRun_ExemptFlatRate(t *testing.T) {
	deal := types.Deal{SuccessFees: money.MustNew("1000000"), IsDealExempt: true}
	contract := types.Contract{RateType: types.RateTypeFixed, FixedRate: fixedRate("0.05")}
	assert.Equal(t, "15000.00", Run(deal, contract, DefaultRates()).String())
}

func TestRun_FixedRate(t *testing.T) {
	deal := types.Deal{SuccessFees: money.MustNew("500000")}
	contract := types.Contract{RateType: types.RateTypeFixed, FixedRate: fixedRate("0.05")}
	assert.Equal(t, "25000.00", Run(deal, contract, DefaultRates()).String())
}

func TestRun_ExemptTakesPriorityOverLehman(t *testing.T) {
	upper := money.MustNew("1000000")
	deal := types.Deal{SuccessFees: money.MustNew("1000000"), IsDealExempt: true}
	contract := types.Contract{
		RateType: types.RateTypeLehman,
		LehmanTiers: []types.LehmanTier{
			{LowerBound: money.Zero, UpperBound: &upper, Rate: money.MustNewRate("0.05")},
		},
	}
	assert.Equal(t, "15000.00", Run(deal, contract, DefaultRates()).String())
}

func TestRun_ExemptRateUsesConfiguredOverride(t *testing.T) {
	deal := types.Deal{SuccessFees: money.MustNew("1000000"), IsDealExempt: true}
	contract := types.Contract{RateType: types.RateTypeFixed, FixedRate: fixedRate("0.05")}
	rates := Rates{Exempt: money.MustNewRate("0.02")}
	assert.Equal(t, "20000.00", Run(deal, contract, rates).String())
}
