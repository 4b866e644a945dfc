package payment

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *stripeGateway {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})

	api := &client.API{}
	api.Init("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})

	return newStripeGateway(api, "USD", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStripeGateway_CreatePaymentIntent(t *testing.T) {
	var form url.Values
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"pi_123","object":"payment_intent","amount":800,"currency":"usd","client_secret":"pi_123_secret_abc"}`)
	})

	intent, err := gateway.CreatePaymentIntent(context.Background(), 800, map[string]string{"package": "standard"})
	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
	assert.Equal(t, int64(800), intent.Amount)
	assert.Equal(t, "usd", intent.Currency)

	assert.Equal(t, "800", form.Get("amount"))
	assert.Equal(t, "usd", form.Get("currency"))
	assert.Equal(t, "standard", form.Get("metadata[package]"))
}

func TestStripeGateway_ProviderError(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = io.WriteString(w, `{"error":{"type":"card_error","message":"Your card was declined."}}`)
	})

	_, err := gateway.CreatePaymentIntent(context.Background(), 500, nil)
	assert.Error(t, err)
}

func TestStripeGateway_RejectsNonPositiveAmount(t *testing.T) {
	gateway := newTestGateway(t, func(http.ResponseWriter, *http.Request) {
		t.Fatal("provider must not be called")
	})

	_, err := gateway.CreatePaymentIntent(context.Background(), 0, nil)
	assert.Error(t, err)
}
