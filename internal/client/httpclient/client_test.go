package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, 0, nil, WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	return client
}

func TestClient_GetDecodesEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/assets/hr@acme.test", r.URL.Path)
		assert.Equal(t, "lap", r.URL.Query().Get("search"))
		assert.Equal(t, "Bearer backend-token", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"success":true,"code":200,"data":[{"name":"Laptop"}]}`))
	})
	client.SetToken("backend-token")

	var got []item
	err := client.Get(context.Background(), "/assets/hr@acme.test", url.Values{"search": {"lap"}}, &got)
	require.NoError(t, err)
	assert.Equal(t, []item{{Name: "Laptop"}}, got)
}

func TestClient_PostSendsJSONWithoutToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "id-token", body["idToken"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"code":201,"data":{"name":"created"}}`))
	})

	var got item
	require.NoError(t, client.Post(context.Background(), "/jwt", map[string]string{"idToken": "id-token"}, &got))
	assert.Equal(t, "created", got.Name)
}

func TestClient_ErrorEnvelopeBecomesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"code":409,"message":"Asset is out of stock","error":{"code":"OUT_OF_STOCK"}}`))
	})

	err := client.Patch(context.Background(), "/asset-request-status/1", map[string]string{"status": "approved"}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "OUT_OF_STOCK", apiErr.Code)
	assert.Equal(t, "Asset is out of stock", apiErr.Message)
	assert.True(t, IsStatus(err, http.StatusConflict))
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	err := client.Delete(context.Background(), "/assets/1", nil)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusBadGateway))
}

func TestClient_Bytes(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"code":404,"message":"Asset not found","error":{"code":"ASSET_NOT_FOUND"}}`))

			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	})

	got, err := client.Bytes(context.Background(), "/assets/1/label")
	require.NoError(t, err)
	assert.Equal(t, png, got)

	_, err = client.Bytes(context.Background(), "/missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "ASSET_NOT_FOUND", apiErr.Code)
}

func TestClient_TokenSlot(t *testing.T) {
	client, err := New("http://localhost:8080", 0, nil)
	require.NoError(t, err)
	assert.Empty(t, client.Token())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = client.Token()
		}()
	}
	client.SetToken("t1")
	wg.Wait()
	assert.Equal(t, "t1", client.Token())

	client.ClearToken()
	assert.Empty(t, client.Token())
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New("/api", 0, nil)
	assert.Error(t, err)
}
