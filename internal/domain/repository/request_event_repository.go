package repository

import (
	"context"

	"assethub/internal/domain/entity"
	"assethub/internal/errors"

	"github.com/google/uuid"
)

// RequestEventRepository stores the status history of asset requests.
type RequestEventRepository interface {
	// Record persists an event; a message ID seen before is rejected with ErrDuplicateEvent.
	Record(ctx context.Context, event *entity.RequestEvent) error

	// ListByRequest returns a request's history, oldest first.
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.RequestEvent, error)
}

// ErrDuplicateEvent is returned when a message was already recorded.
var ErrDuplicateEvent = errors.New("event already recorded")
