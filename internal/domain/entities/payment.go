package entities

import (
	"time"

	"gemtrade_backoffice/pkg/money"
)

// PaymentStatus tracks how far a buyer payment has travelled on its way from
// the mediator to the company bank account.
//
// Transitions are deliberately unguarded: mediators reverse and re-forward
// settlements in practice, so a payment may move backward or jump straight to
// CREDITED_TO_BANK. Only membership in the enum is validated.

type PaymentStatus string

const (
	PaymentStatusPendingWithMediator PaymentStatus = "PENDING_WITH_MEDIATOR"
	PaymentStatusProcessing          PaymentStatus = "PROCESSING"
	PaymentStatusCreditedToBank      PaymentStatus = "CREDITED_TO_BANK"
)

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPendingWithMediator, PaymentStatusProcessing, PaymentStatusCreditedToBank:
		return true
	}
	return false
}

// CommissionType is the mediator's commission model: a percentage of the
// gross USD amount, or a flat USD fee.

type CommissionType string

const (
	CommissionTypePercentage CommissionType = "percentage"
	CommissionTypeFixed      CommissionType = "fixed"
)

func ValidCommissionType(t CommissionType) bool {
	return t == CommissionTypePercentage || t == CommissionTypeFixed
}

// Payment is one settlement slot for part or all of an order's proceeds.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Commission terms are snapshotted from the mediator at creation time;
// re-linking the payment to another mediator later does not rewrite them.
// ActualBankCreditINR and ExchangeDifference are nil until money lands in
// the bank, at which point the actual credit becomes the authoritative
// settled value.

type Payment struct {
	ID           string `json:"id"`
	OrderID      string `json:"order_id"`
	ProductIndex *int   `json:"product_index,omitempty"`
	MediatorID   string `json:"mediator_id"`
	BankID       string `json:"bank_id,omitempty"`

	GrossAmountUSD           float64        `json:"gross_amount_usd"`
	MediatorCommissionType   CommissionType `json:"mediator_commission_type"`
	MediatorCommissionValue  float64        `json:"mediator_commission_value"`
	MediatorCommissionAmount float64        `json:"mediator_commission_amount"`
	NetAmountUSD             float64        `json:"net_amount_usd"`

	// ConversionRate is the USD->INR rate recorded for this payment, fed in
	// by the caller. 0 means "not yet known".
	ConversionRate      float64  `json:"conversion_rate"`
	ExpectedAmountINR   float64  `json:"expected_amount_inr"`
	ActualBankCreditINR *float64 `json:"actual_bank_credit_inr,omitempty"`
	ExchangeDifference  *float64 `json:"exchange_difference,omitempty"`

	PaymentStatus PaymentStatus `json:"payment_status"`
	Notes         string        `json:"notes,omitempty"`

	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Recalculate re-derives every dependent money field from the payment's own
// inputs and returns the result. It is called at the top of both the create
// and the update path, so stored and derived values can never drift apart.
//
// commissionOverride carries an explicitly supplied commission amount for
// this mutation; when nil the amount is derived from the snapshotted
// commission terms.
//
// Derivation order matters: commission -> net -> expected -> exchange
// difference, rounding at each step.
func Recalculate(p Payment, commissionOverride *float64) Payment {
	p.GrossAmountUSD = money.Round2(p.GrossAmountUSD)
	p.MediatorCommissionValue = money.Round2(p.MediatorCommissionValue)

	if commissionOverride != nil {
		p.MediatorCommissionAmount = money.Round2(*commissionOverride)
	} else {
		switch p.MediatorCommissionType {
		case CommissionTypePercentage:
			p.MediatorCommissionAmount = money.Round2(p.GrossAmountUSD * p.MediatorCommissionValue / 100)
		case CommissionTypeFixed:
			p.MediatorCommissionAmount = money.Round2(p.MediatorCommissionValue)
		default:
			p.MediatorCommissionAmount = 0
		}
	}

	p.NetAmountUSD = money.Round2(p.GrossAmountUSD - p.MediatorCommissionAmount)

	if p.ConversionRate > 0 {
		p.ExpectedAmountINR = money.Round2(p.NetAmountUSD * p.ConversionRate)
	} else {
		p.ExpectedAmountINR = 0
	}

	if p.ActualBankCreditINR != nil {
		actual := money.Round2(*p.ActualBankCreditINR)
		diff := money.Round2(actual - p.ExpectedAmountINR)
		p.ActualBankCreditINR = &actual
		p.ExchangeDifference = &diff
	} else {
		p.ExchangeDifference = nil
	}

	return p
}
