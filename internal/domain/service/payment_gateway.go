package service

import "context"

// PaymentIntent is a server-issued intent the client confirms with the payment provider.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"` // smallest currency unit
	Currency     string `json:"currency"`
}

// PaymentGateway abstracts the payment provider (Stripe).
type PaymentGateway interface {
	// CreatePaymentIntent opens an intent for amount in the smallest currency unit.
	CreatePaymentIntent(ctx context.Context, amount int64, metadata map[string]string) (*PaymentIntent, error)
}
