// Package payment connects package purchases to the Stripe payment provider.
package payment

import (
	"context"
	"log/slog"
	"strings"

	"assethub/config"
	"assethub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/fx"
)

const defaultCurrency = "usd"

type stripeGateway struct {
	api      *client.API
	currency string
	logger   *slog.Logger
}

// GatewayParams holds dependencies for the payment gateway, injected by Fx
type GatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewStripeGateway returns a PaymentGateway backed by the Stripe API.
func NewStripeGateway(params GatewayParams) (service.PaymentGateway, error) {
	cfg := params.Config.Stripe
	if cfg == nil || cfg.SecretKey == "" {
		return nil, errors.New("stripe secret key is required")
	}

	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return newStripeGateway(api, cfg.Currency, params.Logger), nil
}

func newStripeGateway(api *client.API, currency string, logger *slog.Logger) *stripeGateway {
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = defaultCurrency
	}

	return &stripeGateway{api: api, currency: currency, logger: logger}
}

// CreatePaymentIntent opens a Stripe payment intent the client confirms with its card details.
func (g *stripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, metadata map[string]string) (*service.PaymentIntent, error) {
	if amount <= 0 {
		return nil, errors.Errorf("invalid payment amount: %d", amount)
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	for key, value := range metadata {
		params.AddMetadata(key, value)
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "create stripe payment intent")
	}

	g.logger.InfoContext(ctx, "Payment intent created",
		slog.String("intent_id", intent.ID),
		slog.Int64("amount", intent.Amount),
	)

	return &service.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
	}, nil
}
