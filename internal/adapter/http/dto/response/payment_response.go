package response

import (
	"time"

	"gemtrade_backoffice/internal/domain/entities"
)

type PaymentResponse struct {
	ID           string `json:"id"`
	OrderID      string `json:"order_id"`
	ProductIndex *int   `json:"product_index,omitempty"`
	MediatorID   string `json:"mediator_id"`
	BankID       string `json:"bank_id,omitempty"`

	GrossAmountUSD           float64 `json:"gross_amount_usd"`
	MediatorCommissionType   string  `json:"mediator_commission_type"`
	MediatorCommissionValue  float64 `json:"mediator_commission_value"`
	MediatorCommissionAmount float64 `json:"mediator_commission_amount"`
	NetAmountUSD             float64 `json:"net_amount_usd"`

	ConversionRate      float64  `json:"conversion_rate"`
	ExpectedAmountINR   float64  `json:"expected_amount_inr"`
	ActualBankCreditINR *float64 `json:"actual_bank_credit_inr,omitempty"`
	ExchangeDifference  *float64 `json:"exchange_difference,omitempty"`

	PaymentStatus string `json:"payment_status"`
	Notes         string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		OrderID:      p.OrderID,
		ProductIndex: p.ProductIndex,
		MediatorID:   p.MediatorID,
		BankID:       p.BankID,

		GrossAmountUSD:           p.GrossAmountUSD,
		MediatorCommissionType:   string(p.MediatorCommissionType),
		MediatorCommissionValue:  p.MediatorCommissionValue,
		MediatorCommissionAmount: p.MediatorCommissionAmount,
		NetAmountUSD:             p.NetAmountUSD,

		ConversionRate:      p.ConversionRate,
		ExpectedAmountINR:   p.ExpectedAmountINR,
		ActualBankCreditINR: p.ActualBankCreditINR,
		ExchangeDifference:  p.ExchangeDifference,

		PaymentStatus: string(p.PaymentStatus),
		Notes:         p.Notes,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
