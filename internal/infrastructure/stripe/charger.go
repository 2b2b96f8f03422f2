// Package stripe implements the card-charging capability against the Stripe
// API, plus a no-op variant for environments without a live processor.
package stripe

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayowande/custpay/internal/domain"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// Charger submits PaymentIntents to Stripe and maps the result to a
// CardCharge. Any transport or processor error is returned as-is so the
// service layer can classify it as a gateway failure, distinct from a
// definitive decline.
type Charger struct {
	api *client.API
}

func NewCharger(apiKey string) *Charger {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &Charger{api: api}
}

func (c *Charger) Charge(ctx context.Context, paymentMethod string, amountCents int64, currency domain.Currency, description string) (*domain.CardCharge, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amountCents),
		Currency:      stripe.String(strings.ToLower(string(currency))),
		Description:   stripe.String(description),
		PaymentMethod: stripe.String(paymentMethod),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create payment intent: %w", err)
	}

	return &domain.CardCharge{
		CardDebited: intent.Status == stripe.PaymentIntentStatusSucceeded,
	}, nil
}
