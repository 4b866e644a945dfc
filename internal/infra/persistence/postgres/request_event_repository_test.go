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

func TestRequestEventRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewRequestEventRepository(db)
	ctx := context.Background()
	requestID := uuid.New()

	event := func(messageID string, from, to entity.RequestStatus, at time.Time) *entity.RequestEvent {
		return &entity.RequestEvent{
			MessageID:      messageID,
			RequestID:      requestID,
			AssetName:      "Laptop",
			CompanyName:    "acme",
			RequesterEmail: "sam@acme.test",
			From:           from,
			To:             to,
			ChangedBy:      "hana@acme.test",
			ChangedAt:      at,
		}
	}

	require.NoError(t, repo.Record(ctx, event("m-2", entity.StatusApproved, entity.StatusReturned, baseTime.Add(time.Hour))))
	require.NoError(t, repo.Record(ctx, event("m-1", entity.StatusPending, entity.StatusApproved, baseTime)))
	require.NoError(t, repo.Record(ctx, &entity.RequestEvent{MessageID: "m-other", RequestID: uuid.New(), ChangedAt: baseTime}))

	assert.ErrorIs(t, repo.Record(ctx, event("m-1", entity.StatusPending, entity.StatusApproved, baseTime)), repository.ErrDuplicateEvent)

	history, err := repo.ListByRequest(ctx, requestID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, entity.StatusApproved, history[0].To)
	assert.Equal(t, entity.StatusReturned, history[1].To)
	assert.Equal(t, "m-2", history[1].MessageID)
}
