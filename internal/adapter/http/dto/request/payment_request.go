package request

// CreatePaymentRequest records a buyer payment against an order.
//
// Commission fields are optional; when absent the mediator's current terms
// are snapshotted onto the payment. gross_amount_usd may legitimately be 0
// (placeholder slot recorded before the wire amount is known), so it is not
// marked required.
type CreatePaymentRequest struct {
	OrderID      string `json:"order_id" binding:"required"`
	MediatorID   string `json:"mediator_id" binding:"required"`
	BankID       string `json:"bank_id"`
	ProductIndex *int   `json:"product_index"`

	GrossAmountUSD           float64  `json:"gross_amount_usd"`
	MediatorCommissionType   *string  `json:"mediator_commission_type"`
	MediatorCommissionValue  *float64 `json:"mediator_commission_value"`
	MediatorCommissionAmount *float64 `json:"mediator_commission_amount"`

	ConversionRate      float64  `json:"conversion_rate"`
	ActualBankCreditINR *float64 `json:"actual_bank_credit_inr"`

	PaymentStatus string `json:"payment_status"`
	Notes         string `json:"notes"`
}

// UpdatePaymentRequest is a partial patch; absent fields stay untouched.
type UpdatePaymentRequest struct {
	MediatorID   *string `json:"mediator_id"`
	BankID       *string `json:"bank_id"`
	ProductIndex *int    `json:"product_index"`

	GrossAmountUSD           *float64 `json:"gross_amount_usd"`
	MediatorCommissionType   *string  `json:"mediator_commission_type"`
	MediatorCommissionValue  *float64 `json:"mediator_commission_value"`
	MediatorCommissionAmount *float64 `json:"mediator_commission_amount"`

	ConversionRate      *float64 `json:"conversion_rate"`
	ActualBankCreditINR *float64 `json:"actual_bank_credit_inr"`

	PaymentStatus *string `json:"payment_status"`
	Notes         *string `json:"notes"`
}

// BulkProfitSummaryRequest asks for profit and payment status across many
// orders at once.
type BulkProfitSummaryRequest struct {
	OrderIDs []string `json:"order_ids" binding:"required"`
}
