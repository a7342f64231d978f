package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dealsyte/commissions-engine/internal/money"
	"github.com/dealsyte/commissions-engine/internal/types"
)

func TestRun_AllFeesOff(t *testing.T) {
	off := false
	deal := types.Deal{SuccessFees: money.MustNew("1000000"), HasFinraFee: &off}
	res := Run(deal, DefaultRates())
	assert.True(t, res.FinraFee.IsZero())
	assert.True(t, res.DistributionFee.IsZero())
	assert.True(t, res.SourcingFee.IsZero())
}

func TestRun_FinraDefaultsOn(t *testing.T) {
	deal := types.Deal{SuccessFees: money.MustNew("1000000")}
	res := Run(deal, DefaultRates())
	assert.Equal(t, "4732.00", res.FinraFee.String())
}

func TestRun_FinraDefaultOffWhenConfigured(t *testing.T) {
	deal := types.Deal{SuccessFees: money.MustNew("1000000")}
	rates := DefaultRates()
	rates.FinraEnabledByDefault = false
	res := Run(deal, rates)
	assert.True(t, res.FinraFee.IsZero())
}

func TestRun_DistributionAndSourcing(t *testing.T) {
	off := false
	deal := types.Deal{
		SuccessFees:           money.MustNew("1000000"),
		HasFinraFee:           &off,
		IsDistributionFeeTrue: true,
		IsSourcingFeeTrue:     true,
	}
	res := Run(deal, DefaultRates())
	assert.Equal(t, "100000.00", res.DistributionFee.String())
	assert.Equal(t, "100000.00", res.SourcingFee.String())
}

func TestRun_RetainerIncludedInBasis(t *testing.T) {
	include := true
	deal := types.Deal{
		SuccessFees:           money.MustNew("1000000"),
		HasExternalRetainer:   true,
		ExternalRetainer:      money.MustNew("100000"),
		IncludeRetainerInFees: &include,
	}
	res := Run(deal, DefaultRates())
	// basis = 1,100,000 * 0.004732
	assert.Equal(t, "5205.20", res.FinraFee.String())
}

func TestRun_RetainerExcludedWhenFlagFalse(t *testing.T) {
	include := false
	deal := types.Deal{
		SuccessFees:           money.MustNew("1000000"),
		HasExternalRetainer:   true,
		ExternalRetainer:      money.MustNew("100000"),
		IncludeRetainerInFees: &include,
	}
	res := Run(deal, DefaultRates())
	assert.Equal(t, "4732.00", res.FinraFee.String())
}
