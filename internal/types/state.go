package types

import "github.com/dealsyte/commissions-engine/internal/money"

// ContractState is both the input the caller supplies and the successor
// state the assembler produces for the caller to persist (spec.md §3
// "ContractState", §6 "updated_contract_state"). The engine itself never
// persists it.
type ContractState struct {
	CurrentCredit money.Amount `json:"current_credit"`
	CurrentDebt   money.Amount `json:"current_debt"`

	IsInCommissionsMode bool `json:"is_in_commissions_mode"`

	FutureSubscriptionFees []SubscriptionPayment   `json:"future_subscription_fees"`
	DeferredSchedule       []DeferredScheduleEntry `json:"deferred_schedule"`
	DeferredSubscriptionFee money.Amount           `json:"deferred_subscription_fee"`

	TotalPaidThisContractYear money.Amount `json:"total_paid_this_contract_year"`
	TotalPaidAllTime          money.Amount `json:"total_paid_all_time"`

	PaygCommissionsAccumulated money.Amount `json:"payg_commissions_accumulated"`
}

// Clone returns a deep copy so the engine can mutate freely without
// aliasing the caller's structures (spec.md §5: "inputs are defensively
// deep-copied").
func (s ContractState) Clone() ContractState {
	out := s
	out.FutureSubscriptionFees = append([]SubscriptionPayment(nil), s.FutureSubscriptionFees...)
	out.DeferredSchedule = append([]DeferredScheduleEntry(nil), s.DeferredSchedule...)
	return out
}
