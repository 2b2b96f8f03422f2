package domain

import (
	"github.com/google/uuid"
)

// Currency is an ISO 4217 currency code.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// SupportedCurrencies is the allow-list the payment policy accepts. It is a
// strict subset of the currencies the schema admits: GBP parses fine but is
// rejected at charge time.
var SupportedCurrencies = map[Currency]bool{
	CurrencyUSD: true,
	CurrencyEUR: true,
}

// IsSupported reports whether the currency is on the payment allow-list.
func (c Currency) IsSupported() bool {
	return SupportedCurrencies[c]
}

// Payment represents a successfully charged card transaction. A Payment row
// exists only if the gateway reported the card as debited. The ID is assigned
// by the store and is monotonically increasing.
type Payment struct {
	ID            int64
	PaymentMethod string
	Description   string
	AmountCents   int64
	Currency      Currency
	CustomerID    uuid.UUID
}

// CardCharge is the gateway's synchronous, final outcome for a charge
// attempt. No pending state is modeled.
type CardCharge struct {
	CardDebited bool
}
