package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) IdentityProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	provider, err := NewFirebaseProvider(context.Background(), "web-api-key",
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	return provider
}

func TestFirebaseProvider_SignIn(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/verifyPassword"), r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hr@acme.test", body["email"])
		assert.Equal(t, true, body["returnSecureToken"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"hr@acme.test","idToken":"firebase-id","localId":"uid-1","displayName":"Hana"}`))
	})

	cred, err := provider.SignIn(context.Background(), "hr@acme.test", "Secret1")
	require.NoError(t, err)
	assert.Equal(t, "firebase-id", cred.IDToken)
	assert.Equal(t, User{ID: "uid-1", Email: "hr@acme.test", DisplayName: "Hana"}, cred.User)
}

func TestFirebaseProvider_RejectedCredentials(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"EMAIL_EXISTS"}}`))
	})

	_, err := provider.SignUp(context.Background(), "hr@acme.test", "Secret1", "Hana", "")
	require.ErrorIs(t, err, ErrAuth)
	assert.Contains(t, err.Error(), "EMAIL_EXISTS")
}

func TestNewFirebaseProvider_RequiresKey(t *testing.T) {
	_, err := NewFirebaseProvider(context.Background(), "")
	assert.Error(t, err)
}
