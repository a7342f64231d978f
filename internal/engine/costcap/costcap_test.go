package costcap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dealsyte/commissions-engine/internal/money"
	"github.com/dealsyte/commissions-engine/internal/types"
)

func TestRun_NoCapPassesThrough(t *testing.T) {
	res := Run(Input{
		Contract:    types.Contract{},
		Commissions: money.MustNew("25000"),
	})
	assert.Equal(t, "25000.00", res.Commissions.String())
	assert.True(t, res.AmountNotChargedDueToCap.IsZero())
}

func TestRun_AnnualCapPartial(t *testing.T) {
	cap := money.MustNew("100000")
	res := Run(Input{
		Contract: types.Contract{
			CostCapType:   types.CostCapAnnual,
			CostCapAmount: &cap,
		},
		PaidSoFar:   money.MustNew("90000"),
		Commissions: money.MustNew("25000"),
	})
	assert.Equal(t, "10000.00", res.Commissions.String())
	assert.Equal(t, "15000.00", res.AmountNotChargedDueToCap.String())
}

func TestRun_PAYGCapBelowARR_FundsARRFirst(t *testing.T) {
	cap := money.MustNew("5000")
	res := Run(Input{
		Contract: types.Contract{
			CostCapType:   types.CostCapTotal,
			CostCapAmount: &cap,
		},
		PaidSoFar:       money.Zero,
		Commissions:     money.MustNew("15000"), // excess
		ARRContribution: money.MustNew("10000"),
	})
	assert.Equal(t, "5000.00", res.ARRContribution.String())
	assert.True(t, res.Commissions.IsZero())
	assert.Equal(t, "20000.00", res.AmountNotChargedDueToCap.String())
}

func TestRun_AdvanceFeesReduceAvailableFirst(t *testing.T) {
	cap := money.MustNew("10000")
	res := Run(Input{
		Contract: types.Contract{
			CostCapType:   types.CostCapAnnual,
			CostCapAmount: &cap,
		},
		AdvanceFeesCreated: money.MustNew("8000"),
		Commissions:        money.MustNew("5000"),
	})
	assert.Equal(t, "2000.00", res.Commissions.String())
	assert.Equal(t, "3000.00", res.AmountNotChargedDueToCap.String())
}

func TestRun_PaidSoFarAtOrAboveCapZeroesChargeable(t *testing.T) {
	cap := money.MustNew("100000")
	res := Run(Input{
		Contract: types.Contract{
			CostCapType:   types.CostCapTotal,
			CostCapAmount: &cap,
		},
		PaidSoFar:   money.MustNew("150000"),
		Commissions: money.MustNew("5000"),
	})
	assert.True(t, res.Commissions.IsZero())
	assert.Equal(t, "5000.00", res.AmountNotChargedDueToCap.String())
}
