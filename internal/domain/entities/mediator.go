package entities

import "time"

// Mediator is the commission-bearing intermediary buyers pay through.
//
// Its commission terms are copied onto each payment at creation time, so
// editing a mediator never rewrites historical settlements.
//
// Storage model (DynamoDB):
//   - PK: id

type Mediator struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	CommissionType  CommissionType `json:"commission_type"`
	CommissionValue float64        `json:"commission_value"`

	// SettlementDelayDays is a reporting hint for how long this mediator
	// usually takes to forward funds. It never enters any computation.
	SettlementDelayDays int `json:"settlement_delay_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
