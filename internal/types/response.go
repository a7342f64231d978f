package types

import "github.com/dealsyte/commissions-engine/internal/money"

// DealSummary echoes the identifying facts of the processed deal alongside
// the contract year it fell into (spec.md §6).
type DealSummary struct {
	DealName     string       `json:"deal_name"`
	SuccessFees  money.Amount `json:"success_fees"`
	DealDate     Date         `json:"deal_date"`
	ContractYear int          `json:"contract_year"`
}

// Calculations is the full fee/commission breakdown (spec.md §6
// "calculations").
type Calculations struct {
	FinraFee                 money.Amount `json:"finra_fee"`
	DistributionFee          money.Amount `json:"distribution_fee"`
	SourcingFee              money.Amount `json:"sourcing_fee"`
	ImpliedTotal             money.Amount `json:"implied_total"`
	DebtCollected            money.Amount `json:"debt_collected"`
	CreditUsed               money.Amount `json:"credit_used"`
	ImpliedAfterCredit       money.Amount `json:"implied_after_credit"`
	AdvanceFeesCreated       money.Amount `json:"advance_fees_created"`
	ImpliedAfterSubscription money.Amount `json:"implied_after_subscription"`
	FinalisCommissions       money.Amount `json:"finalis_commissions"`
	AmountNotChargedDueToCap money.Amount `json:"amount_not_charged_due_to_cap"`
	NetPayout                money.Amount `json:"net_payout"`
}

// StateChanges summarizes the deltas the caller applied this call
// (spec.md §6 "state_changes").
type StateChanges struct {
	DebtCollected           money.Amount `json:"debt_collected"`
	DebtRemaining           money.Amount `json:"debt_remaining"`
	CreditGenerated         money.Amount `json:"credit_generated"`
	CreditUsed              money.Amount `json:"credit_used"`
	CreditRemaining         money.Amount `json:"credit_remaining"`
	EnteredCommissionsMode  bool         `json:"entered_commissions_mode"`
	IsNowInCommissionsMode  bool         `json:"is_now_in_commissions_mode"`
}

// UpdatedContractState is the trimmed projection of ContractState the
// response surfaces (spec.md §6 "updated_contract_state"); the full state
// to persist is the caller's own ContractState value, returned separately
// by the engine package for callers that want it whole.
type UpdatedContractState struct {
	CurrentCredit             money.Amount `json:"current_credit"`
	CurrentDebt               money.Amount `json:"current_debt"`
	IsInCommissionsMode       bool         `json:"is_in_commissions_mode"`
	TotalPaidThisContractYear money.Amount `json:"total_paid_this_contract_year"`
	TotalPaidAllTime          money.Amount `json:"total_paid_all_time"`
}

// PaygTracking is only populated for pay-as-you-go contracts (spec.md §6
// "payg_tracking").
type PaygTracking struct {
	ARRTargetAmount          money.Amount `json:"arr_target"`
	ARRContributionThisDeal  money.Amount `json:"arr_contribution_this_deal"`
	FinalisCommissionsThisDeal money.Amount `json:"finalis_commissions_this_deal"`
	CommissionsAccumulated   money.Amount `json:"commissions_accumulated"`
	RemainingToCoverARR      money.Amount `json:"remaining_to_cover_arr"`
	ARRCoveragePercentage    money.Amount `json:"arr_coverage_percentage"`
}

// Response is the full JSON shape returned to the caller (spec.md §6).
type Response struct {
	DealSummary            DealSummary            `json:"deal_summary"`
	Calculations           Calculations           `json:"calculations"`
	StateChanges           StateChanges           `json:"state_changes"`
	UpdatedFuturePayments  []SubscriptionPayment  `json:"updated_future_payments"`
	UpdatedContractState   UpdatedContractState   `json:"updated_contract_state"`
	PaygTracking           *PaygTracking          `json:"payg_tracking,omitempty"`
}
