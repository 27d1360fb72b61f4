package response

import "gemtrade_backoffice/internal/domain/entities"

type OrderProfitSummaryResponse struct {
	OrderID string `json:"order_id"`

	TotalGrossUSD           float64 `json:"total_gross_usd"`
	TotalNetUSD             float64 `json:"total_net_usd"`
	TotalExpectedINR        float64 `json:"total_expected_inr"`
	TotalFinalBankCreditINR float64 `json:"total_final_bank_credit_inr"`
	TotalExchangeDifference float64 `json:"total_exchange_difference"`
	TotalCommissionINR      float64 `json:"total_commission_inr"`

	TotalExpectedINRAllPayments float64 `json:"total_expected_inr_all_payments"`

	PurchasePrice float64 `json:"purchase_price"`
	SupplierCost  float64 `json:"supplier_cost"`
	ShippingCost  float64 `json:"shipping_cost"`
	PackagingCost float64 `json:"packaging_cost"`
	OtherExpenses float64 `json:"other_expenses"`

	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
	SellingTotal  float64 `json:"selling_total"`
	ProfitPercent float64 `json:"profit_percent"`

	SettledPaymentsCount int `json:"settled_payments_count"`
}

func FromOrderProfitSummary(s entities.OrderProfitSummary) OrderProfitSummaryResponse {
	return OrderProfitSummaryResponse(s)
}

type OrderPaymentSummaryResponse struct {
	OrderID          string  `json:"order_id"`
	NetProfit        float64 `json:"net_profit"`
	TotalActualINR   float64 `json:"total_actual_inr"`
	TotalExpenses    float64 `json:"total_expenses"`
	TotalExpectedINR float64 `json:"total_expected_inr"`
	EstimatedProfit  float64 `json:"estimated_profit"`
	PaymentStatus    string  `json:"payment_status"`
}

func FromOrderPaymentSummaries(m map[string]entities.OrderPaymentSummary) map[string]OrderPaymentSummaryResponse {
	out := make(map[string]OrderPaymentSummaryResponse, len(m))
	for id, s := range m {
		out[id] = OrderPaymentSummaryResponse{
			OrderID:          s.OrderID,
			NetProfit:        s.NetProfit,
			TotalActualINR:   s.TotalActualINR,
			TotalExpenses:    s.TotalExpenses,
			TotalExpectedINR: s.TotalExpectedINR,
			EstimatedProfit:  s.EstimatedProfit,
			PaymentStatus:    string(s.PaymentStatus),
		}
	}
	return out
}
