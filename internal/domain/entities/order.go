package entities

import (
	"time"

	"gemtrade_backoffice/pkg/money"
)

// Currency tags a product line's selling price. Orders routinely mix USD
// (export sales settled through mediators) and INR (domestic sales) lines.

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyINR Currency = "INR"
)

type Product struct {
	Name          string  `json:"name"`
	SellingPrice  float64 `json:"selling_price"`
	PurchasePrice float64 `json:"purchase_price"`
	// PaymentCurrency defaults to INR when the tag is absent.
	PaymentCurrency Currency `json:"payment_currency,omitempty"`
}

func (p Product) Currency() Currency {
	if p.PaymentCurrency == CurrencyUSD {
		return CurrencyUSD
	}
	return CurrencyINR
}

// Order is the trade document payments settle against. This service only
// reads orders; order CRUD lives elsewhere in the back office.
//
// Storage model (DynamoDB):
//   - PK: id

type Order struct {
	ID       string    `json:"id"`
	Products []Product `json:"products"`

	SupplierCost  float64 `json:"supplier_cost"`
	ShippingCost  float64 `json:"shipping_cost"`
	PackagingCost float64 `json:"packaging_cost"`
	OtherExpenses float64 `json:"other_expenses"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PurchasePriceTotal sums the purchase price of every product line,
// rounding once at the end.
func (o Order) PurchasePriceTotal() float64 {
	total := 0.0
	for _, p := range o.Products {
		total += p.PurchasePrice
	}
	return money.Round2(total)
}

// SellingTotal sums selling prices across every product line regardless of
// currency tag. It feeds the profit-percent denominator only.
func (o Order) SellingTotal() float64 {
	total := 0.0
	for _, p := range o.Products {
		total += p.SellingPrice
	}
	return money.Round2(total)
}

// SellingTotalsByCurrency splits the selling prices into USD and INR
// buckets. The payment-status classifier checks coverage per bucket rather
// than converting one currency into the other.
func (o Order) SellingTotalsByCurrency() (usd, inr float64) {
	for _, p := range o.Products {
		if p.Currency() == CurrencyUSD {
			usd += p.SellingPrice
		} else {
			inr += p.SellingPrice
		}
	}
	return money.Round2(usd), money.Round2(inr)
}
