package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealsyte/commissions-engine/internal/money"
	"github.com/dealsyte/commissions-engine/internal/types"
)

func mustDate(t *testing.T, s string) types.Date {
	t.Helper()
	d, err := types.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestRun_PaysInDueDateOrder(t *testing.T) {
	later := mustDate(t, "2024-06-01")
	earlier := mustDate(t, "2024-01-01")
	payments := []types.SubscriptionPayment{
		{PaymentID: "later", DueDate: later, AmountDue: money.MustNew("5000")},
		{PaymentID: "earlier", DueDate: earlier, AmountDue: money.MustNew("5000")},
	}

	res := Run(payments, money.MustNew("5000"))

	assert.Equal(t, "earlier", res.Payments[0].PaymentID)
	assert.Equal(t, "5000.00", res.Payments[0].AmountPaid.String())
	assert.True(t, res.Payments[1].AmountPaid.IsZero())
	assert.Equal(t, "5000.00", res.AdvanceFeesCreated.String())
	assert.True(t, res.ImpliedAfterSubscription.IsZero())
}

func TestRun_StopsWhenAvailableExhausted(t *testing.T) {
	d := mustDate(t, "2024-01-01")
	payments := []types.SubscriptionPayment{
		{PaymentID: "p1", DueDate: d, AmountDue: money.MustNew("3000")},
		{PaymentID: "p2", DueDate: d, AmountDue: money.MustNew("3000")},
	}

	res := Run(payments, money.MustNew("4000"))

	assert.Equal(t, "3000.00", res.Payments[0].AmountPaid.String())
	assert.Equal(t, "1000.00", res.Payments[1].AmountPaid.String())
	assert.Equal(t, "4000.00", res.AdvanceFeesCreated.String())
	assert.True(t, res.ImpliedAfterSubscription.IsZero())
}

func TestRun_RespectsAlreadyPartiallyPaid(t *testing.T) {
	d := mustDate(t, "2024-01-01")
	payments := []types.SubscriptionPayment{
		{PaymentID: "p1", DueDate: d, AmountDue: money.MustNew("1000"), AmountPaid: money.MustNew("600")},
	}

	res := Run(payments, money.MustNew("1000"))

	assert.Equal(t, "1000.00", res.Payments[0].AmountPaid.String())
	assert.Equal(t, "400.00", res.AdvanceFeesCreated.String())
	assert.Equal(t, "600.00", res.ImpliedAfterSubscription.String())
}

func TestRun_LeftoverAfterAllPaymentsSatisfied(t *testing.T) {
	d := mustDate(t, "2024-01-01")
	payments := []types.SubscriptionPayment{
		{PaymentID: "p1", DueDate: d, AmountDue: money.MustNew("1000")},
	}
	res := Run(payments, money.MustNew("5000"))
	assert.Equal(t, "1000.00", res.AdvanceFeesCreated.String())
	assert.Equal(t, "4000.00", res.ImpliedAfterSubscription.String())
}
