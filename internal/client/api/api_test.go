package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"assethub/internal/client/httpclient"
	"assethub/internal/client/paging"
	"assethub/internal/domain/entity"
	"assethub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  string
	body   string
}

func newRecordingClient(t *testing.T, data string) (*Client, *recorded) {
	t.Helper()

	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.body = string(raw)

		_, _ = w.Write([]byte(`{"success":true,"code":200,"data":` + data + `}`))
	}))
	t.Cleanup(srv.Close)

	hc, err := httpclient.New(srv.URL, 0, nil, httpclient.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	return New(hc), rec
}

func TestClient_Routes(t *testing.T) {
	id := uuid.MustParse("8f5a3d5e-0c5c-4f8e-9a59-1f1f0f7f6b10")
	ctx := context.Background()

	tests := []struct {
		name   string
		data   string
		call   func(c *Client) error
		method string
		path   string
		query  string
		body   string
	}{
		{
			name:   "company assets with filters",
			data:   `[]`,
			call:   func(c *Client) error { _, err := c.CompanyAssets(ctx, "hr@acme.test", paging.AssetFilter{Stock: entity.StockOut}); return err },
			method: http.MethodGet, path: "/assets/hr@acme.test", query: "stock=out-of-stock",
		},
		{
			name:   "requestable assets",
			data:   `[]`,
			call:   func(c *Client) error { _, err := c.RequestableAssets(ctx, "eli@acme.test", paging.AssetFilter{Search: "desk"}); return err },
			method: http.MethodGet, path: "/employee-assets/eli@acme.test", query: "search=desk",
		},
		{
			name:   "pending requests",
			data:   `[]`,
			call:   func(c *Client) error { _, err := c.PendingRequests(ctx, "hr@acme.test"); return err },
			method: http.MethodGet, path: "/assetRequests/pending/hr@acme.test",
		},
		{
			name:   "monthly requests",
			data:   `[]`,
			call:   func(c *Client) error { _, err := c.MonthlyRequests(ctx, "eli@acme.test", paging.RequestFilter{Status: entity.StatusApproved}); return err },
			method: http.MethodGet, path: "/assetRequests/monthly/eli@acme.test", query: "status=approved",
		},
		{
			name:   "approve",
			data:   `{"status":"approved"}`,
			call:   func(c *Client) error { _, err := c.DecideRequest(ctx, id, entity.StatusApproved); return err },
			method: http.MethodPatch, path: "/asset-request-status/" + id.String(), body: `{"status":"approved"}`,
		},
		{
			name:   "cancel",
			data:   `{"status":"cancelled"}`,
			call:   func(c *Client) error { _, err := c.CancelRequest(ctx, id); return err },
			method: http.MethodPatch, path: "/assetRequestStatus/" + id.String(), body: `{"status":"cancelled"}`,
		},
		{
			name:   "return",
			data:   `{"status":"returned"}`,
			call:   func(c *Client) error { _, err := c.ReturnAsset(ctx, id); return err },
			method: http.MethodPatch, path: "/return-asset/" + id.String(),
		},
		{
			name:   "update asset",
			data:   `{}`,
			call:   func(c *Client) error { _, err := c.UpdateAsset(ctx, id, usecase.AssetInput{ProductName: "Desk"}); return err },
			method: http.MethodPut, path: "/update-asset/" + id.String(),
			body: `{"productName":"Desk","productType":"","productQuantity":0,"image":""}`,
		},
		{
			name:   "delete asset",
			data:   `null`,
			call:   func(c *Client) error { return c.DeleteAsset(ctx, id) },
			method: http.MethodDelete, path: "/assets/" + id.String(),
		},
		{
			name:   "team roster",
			data:   `[]`,
			call:   func(c *Client) error { _, err := c.Team(ctx, "hr@acme.test", paging.TeamFilter{Search: "bo"}); return err },
			method: http.MethodGet, path: "/myEmployees/hr@acme.test", query: "search=bo",
		},
		{
			name:   "remove employee",
			data:   `null`,
			call:   func(c *Client) error { return c.RemoveEmployee(ctx, id, "hr@acme.test") },
			method: http.MethodDelete, path: "/removeEmployee/" + id.String() + "/hr@acme.test",
		},
		{
			name:   "add employees",
			data:   `{}`,
			call:   func(c *Client) error { _, err := c.AddEmployees(ctx, []uuid.UUID{id}); return err },
			method: http.MethodPost, path: "/add-employees", body: `{"employeeIds":["` + id.String() + `"]}`,
		},
		{
			name:   "payment intent",
			data:   `{"clientSecret":"pi_secret"}`,
			call:   func(c *Client) error { _, err := c.CreatePaymentIntent(ctx, "standard"); return err },
			method: http.MethodPost, path: "/create-payment-intent", body: `{"packageName":"standard"}`,
		},
		{
			name:   "token exchange",
			data:   `{"token":"backend"}`,
			call:   func(c *Client) error { _, err := c.IssueToken(ctx, "id-token"); return err },
			method: http.MethodPost, path: "/jwt", body: `{"idToken":"id-token"}`,
		},
		{
			name:   "role",
			data:   `{"role":"hr"}`,
			call:   func(c *Client) error { _, err := c.Role(ctx, "hr@acme.test"); return err },
			method: http.MethodGet, path: "/users/role/hr@acme.test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newRecordingClient(t, tt.data)
			require.NoError(t, tt.call(client))

			assert.Equal(t, tt.method, rec.method)
			assert.Equal(t, tt.path, rec.path)
			assert.Equal(t, tt.query, rec.query)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, rec.body)
			}
		})
	}
}

func TestClient_DecodesTypedData(t *testing.T) {
	client, _ := newRecordingClient(t, `{"email":"hr@acme.test","role":"hr","companyName":"acme","memberLimit":10,"currentMembers":4}`)

	viewer, err := client.Role(context.Background(), "hr@acme.test")
	require.NoError(t, err)

	raw, _ := json.Marshal(viewer)
	assert.JSONEq(t, `{"email":"hr@acme.test","role":"hr","companyName":"acme","companyLogo":"","memberLimit":10,"currentMembers":4}`, string(raw))
}
