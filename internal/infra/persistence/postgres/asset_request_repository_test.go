package postgres

import (
	"context"
	"testing"
	"time"

	"assethub/internal/domain/entity"
	"assethub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRequest(t *testing.T, repo repository.AssetRequestRepository, asset, requester, company string, assetType entity.ProductType, status entity.RequestStatus, at time.Time) *entity.AssetRequest {
	t.Helper()

	request := &entity.AssetRequest{
		ID:             uuid.New(),
		AssetID:        uuid.New(),
		AssetName:      asset,
		AssetType:      assetType,
		RequestDate:    at,
		Status:         status,
		RequesterName:  requester,
		RequesterEmail: requester + "@" + company + ".test",
		CompanyName:    company,
	}
	require.NoError(t, repo.Create(context.Background(), request))

	return request
}

func TestAssetRequestRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssetRequestRepository(db)
	ctx := context.Background()

	seedRequest(t, repo, "Laptop", "alice", "acme", entity.ProductReturnable, entity.StatusPending, baseTime)
	seedRequest(t, repo, "Pen", "alice", "acme", entity.ProductNonReturnable, entity.StatusApproved, baseTime.Add(24*time.Hour))
	seedRequest(t, repo, "Monitor", "bob", "acme", entity.ProductReturnable, entity.StatusPending, baseTime.Add(48*time.Hour))
	seedRequest(t, repo, "Laptop", "otto", "globex", entity.ProductReturnable, entity.StatusPending, baseTime)

	names := func(requests []*entity.AssetRequest) []string {
		out := make([]string, 0, len(requests))
		for _, r := range requests {
			out = append(out, r.AssetName+"/"+r.RequesterName)
		}

		return out
	}

	tests := []struct {
		name  string
		scope repository.RequestScope
		query entity.RequestQuery
		want  []string
	}{
		{name: "company newest first", scope: repository.RequestScope{CompanyName: "acme"}, want: []string{"Monitor/bob", "Pen/alice", "Laptop/alice"}},
		{name: "requester", scope: repository.RequestScope{RequesterEmail: "alice@acme.test"}, want: []string{"Pen/alice", "Laptop/alice"}},
		{name: "since", scope: repository.RequestScope{CompanyName: "acme", Since: baseTime.Add(time.Hour)}, want: []string{"Monitor/bob", "Pen/alice"}},
		{name: "status", scope: repository.RequestScope{CompanyName: "acme"}, query: entity.RequestQuery{Status: entity.StatusPending}, want: []string{"Monitor/bob", "Laptop/alice"}},
		{name: "type", scope: repository.RequestScope{CompanyName: "acme"}, query: entity.RequestQuery{Type: entity.ProductNonReturnable}, want: []string{"Pen/alice"}},
		{name: "search requester", scope: repository.RequestScope{CompanyName: "acme"}, query: entity.RequestQuery{Search: "BOB"}, want: []string{"Monitor/bob"}},
		{name: "search asset", scope: repository.RequestScope{CompanyName: "acme"}, query: entity.RequestQuery{Search: "lap"}, want: []string{"Laptop/alice"}},
		{name: "limit", scope: repository.RequestScope{CompanyName: "acme", Limit: 1}, want: []string{"Monitor/bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requests, err := repo.List(ctx, tt.scope, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(requests))
		})
	}
}

func TestAssetRequestRepository_UpdateStatus_IsConditional(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssetRequestRepository(db)
	ctx := context.Background()
	request := seedRequest(t, repo, "Laptop", "alice", "acme", entity.ProductReturnable, entity.StatusPending, baseTime)
	approvedAt := baseTime.Add(time.Hour)

	require.NoError(t, repo.UpdateStatus(ctx, request.ID, entity.StatusPending, entity.StatusApproved, &approvedAt))

	got, err := repo.FindByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, got.Status)
	require.NotNil(t, got.ApprovalDate)
	assert.True(t, approvedAt.Equal(*got.ApprovalDate))

	// A second decision on the same request loses the race.
	err = repo.UpdateStatus(ctx, request.ID, entity.StatusPending, entity.StatusRejected, nil)
	assert.ErrorIs(t, err, repository.ErrRequestNotFound)

	require.NoError(t, repo.UpdateStatus(ctx, request.ID, entity.StatusApproved, entity.StatusReturned, nil))
	got, err = repo.FindByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReturned, got.Status)
	require.NotNil(t, got.ApprovalDate, "returning keeps the approval date")
}

func TestAssetRequestRepository_Stats(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssetRequestRepository(db)
	ctx := context.Background()

	seedRequest(t, repo, "Laptop", "alice", "acme", entity.ProductReturnable, entity.StatusPending, baseTime)
	seedRequest(t, repo, "Laptop", "bob", "acme", entity.ProductReturnable, entity.StatusApproved, baseTime)
	seedRequest(t, repo, "Chair", "bob", "acme", entity.ProductReturnable, entity.StatusRejected, baseTime)
	seedRequest(t, repo, "Pen", "alice", "acme", entity.ProductNonReturnable, entity.StatusApproved, baseTime)
	seedRequest(t, repo, "Desk", "otto", "globex", entity.ProductReturnable, entity.StatusPending, baseTime)

	counts, err := repo.CountByType(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, map[entity.ProductType]int{entity.ProductReturnable: 3, entity.ProductNonReturnable: 1}, counts)

	top, err := repo.TopRequested(ctx, "acme", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Laptop", "Chair"}, top)
}
