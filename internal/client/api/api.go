// Package api binds every assethub endpoint to a typed call over the HTTP adapter.
package api

import (
	"context"
	"net/url"

	"assethub/internal/client/httpclient"
	"assethub/internal/client/paging"
	"assethub/internal/domain/entity"
	"assethub/internal/domain/service"
	"assethub/internal/usecase"

	"github.com/google/uuid"
)

// Client is safe for concurrent use.
type Client struct {
	http *httpclient.Client
}

func New(http *httpclient.Client) *Client {
	return &Client{http: http}
}

// HTTP exposes the adapter, whose token slot the session writes.
func (c *Client) HTTP() *httpclient.Client {
	return c.http
}

func seg(s string) string {
	return url.PathEscape(s)
}

// --- account ---

// IssueToken exchanges an identity-provider ID token for the backend token.
func (c *Client) IssueToken(ctx context.Context, idToken string) (*usecase.TokenOutput, error) {
	var out usecase.TokenOutput
	if err := c.http.Post(ctx, "/jwt", map[string]string{"idToken": idToken}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Register creates the profile of the signed-in identity.
func (c *Client) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	var out entity.User
	if err := c.http.Post(ctx, "/users", input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	var out entity.User
	if err := c.http.Patch(ctx, "/users/profile", input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Role resolves the viewer behind email.
func (c *Client) Role(ctx context.Context, email string) (*entity.Viewer, error) {
	var out entity.Viewer
	if err := c.http.Get(ctx, "/users/role/"+seg(email), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) CompanyBrand(ctx context.Context, email string) (*usecase.CompanyBrand, error) {
	var out usecase.CompanyBrand
	if err := c.http.Get(ctx, "/users-logo/"+seg(email), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// --- assets ---

func (c *Client) CompanyAssets(ctx context.Context, email string, filter paging.AssetFilter) ([]*entity.Asset, error) {
	var out []*entity.Asset
	if err := c.http.Get(ctx, "/assets/"+seg(email), filter.Values(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) RequestableAssets(ctx context.Context, email string, filter paging.AssetFilter) ([]*entity.Asset, error) {
	var out []*entity.Asset
	if err := c.http.Get(ctx, "/employee-assets/"+seg(email), filter.Values(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) AddAsset(ctx context.Context, input usecase.AssetInput) (*entity.Asset, error) {
	var out entity.Asset
	if err := c.http.Post(ctx, "/add-asset", input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) UpdateAsset(ctx context.Context, id uuid.UUID, input usecase.AssetInput) (*entity.Asset, error) {
	var out entity.Asset
	if err := c.http.Put(ctx, "/update-asset/"+id.String(), input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	return c.http.Delete(ctx, "/assets/"+id.String(), nil)
}

// AssetLabel downloads the PNG QR label of an asset.
func (c *Client) AssetLabel(ctx context.Context, id uuid.UUID) ([]byte, error) {
	return c.http.Bytes(ctx, "/assets/"+id.String()+"/label")
}

func (c *Client) Stats(ctx context.Context, email string) (*entity.HRStats, error) {
	var out entity.HRStats
	if err := c.http.Get(ctx, "/hr-stats/"+seg(email), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// --- requests ---

func (c *Client) CreateRequest(ctx context.Context, input usecase.CreateRequestInput) (*entity.AssetRequest, error) {
	var out entity.AssetRequest
	if err := c.http.Post(ctx, "/assetRequests", input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) CompanyRequests(ctx context.Context, email string, filter paging.RequestFilter) ([]*entity.AssetRequest, error) {
	return c.requests(ctx, "/assetRequests/company/"+seg(email), filter.Values())
}

func (c *Client) PendingRequests(ctx context.Context, email string) ([]*entity.AssetRequest, error) {
	return c.requests(ctx, "/assetRequests/pending/"+seg(email), nil)
}

func (c *Client) EmployeeRequests(ctx context.Context, email string, filter paging.RequestFilter) ([]*entity.AssetRequest, error) {
	return c.requests(ctx, "/assetRequests/employee/"+seg(email), filter.Values())
}

func (c *Client) MonthlyRequests(ctx context.Context, email string, filter paging.RequestFilter) ([]*entity.AssetRequest, error) {
	return c.requests(ctx, "/assetRequests/monthly/"+seg(email), filter.Values())
}

func (c *Client) requests(ctx context.Context, path string, query url.Values) ([]*entity.AssetRequest, error) {
	var out []*entity.AssetRequest
	if err := c.http.Get(ctx, path, query, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// DecideRequest approves or rejects a pending request.
func (c *Client) DecideRequest(ctx context.Context, id uuid.UUID, status entity.RequestStatus) (*entity.AssetRequest, error) {
	return c.patchRequest(ctx, "/asset-request-status/"+id.String(), map[string]entity.RequestStatus{"status": status})
}

// CancelRequest withdraws the caller's pending request.
func (c *Client) CancelRequest(ctx context.Context, id uuid.UUID) (*entity.AssetRequest, error) {
	return c.patchRequest(ctx, "/assetRequestStatus/"+id.String(), map[string]entity.RequestStatus{"status": entity.StatusCancelled})
}

// ReturnAsset gives back an approved returnable asset.
func (c *Client) ReturnAsset(ctx context.Context, id uuid.UUID) (*entity.AssetRequest, error) {
	return c.patchRequest(ctx, "/return-asset/"+id.String(), nil)
}

func (c *Client) patchRequest(ctx context.Context, path string, body any) (*entity.AssetRequest, error) {
	var out entity.AssetRequest
	if err := c.http.Patch(ctx, path, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// --- team ---

func (c *Client) Team(ctx context.Context, email string, filter paging.TeamFilter) ([]*entity.User, error) {
	var out []*entity.User
	if err := c.http.Get(ctx, "/myEmployees/"+seg(email), filter.Values(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) Unaffiliated(ctx context.Context) ([]*entity.User, error) {
	var out []*entity.User
	if err := c.http.Get(ctx, "/employees-without-company", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) AddEmployees(ctx context.Context, ids []uuid.UUID) (*entity.Viewer, error) {
	var out entity.Viewer
	if err := c.http.Post(ctx, "/add-employees", usecase.AddEmployeesInput{EmployeeIDs: ids}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) RemoveEmployee(ctx context.Context, id uuid.UUID, hrEmail string) error {
	return c.http.Delete(ctx, "/removeEmployee/"+id.String()+"/"+seg(hrEmail), nil)
}

// --- payments ---

func (c *Client) Packages(ctx context.Context) ([]entity.Package, error) {
	var out []entity.Package
	if err := c.http.Get(ctx, "/packages", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// CreatePaymentIntent returns the client secret the payment provider confirms.
func (c *Client) CreatePaymentIntent(ctx context.Context, packageName string) (*service.PaymentIntent, error) {
	var out service.PaymentIntent
	if err := c.http.Post(ctx, "/create-payment-intent", usecase.PaymentIntentInput{PackageName: packageName}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) RecordPayment(ctx context.Context, packageName, transactionID string) (*entity.Viewer, error) {
	var out entity.Viewer
	input := usecase.RecordPaymentInput{PackageName: packageName, TransactionID: transactionID}
	if err := c.http.Post(ctx, "/payments", input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) Payments(ctx context.Context, email string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	if err := c.http.Get(ctx, "/payments/"+seg(email), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}
