package entities

import "time"

// Bank is the account a settlement finally lands in. Payments reference it
// optionally; this service only checks existence.
//
// Storage model (DynamoDB):
//   - PK: id

type Bank struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	AccountNumber string    `json:"account_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
