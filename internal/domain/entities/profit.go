package entities

// OrderPaymentState is the three-way payment completeness verdict derived
// for each order by the bulk profit calculation.

type OrderPaymentState string

const (
	OrderPaymentStatePaid    OrderPaymentState = "Paid"
	OrderPaymentStatePartial OrderPaymentState = "Partial"
	OrderPaymentStateUnpaid  OrderPaymentState = "Unpaid"
)

// CoverageTolerance absorbs rounding noise when cumulative payment amounts
// are compared against an order's selling price. Fixed by design, not
// configurable.
const CoverageTolerance = 0.01

// OrderProfitSummary is the single-order profitability report.
//
// Settled totals cover CREDITED_TO_BANK payments only; the expected total
// over all payments is the "if everything eventually clears" estimate and
// is reported separately.
type OrderProfitSummary struct {
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

// OrderPaymentSummary is the per-order slice of the bulk computation used by
// dashboards and order lists.
type OrderPaymentSummary struct {
	OrderID          string            `json:"order_id"`
	NetProfit        float64           `json:"net_profit"`
	TotalActualINR   float64           `json:"total_actual_inr"`
	TotalExpenses    float64           `json:"total_expenses"`
	TotalExpectedINR float64           `json:"total_expected_inr"`
	EstimatedProfit  float64           `json:"estimated_profit"`
	PaymentStatus    OrderPaymentState `json:"payment_status"`
}
