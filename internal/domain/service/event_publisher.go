package service

import (
	"context"
	"time"
)

// RequestStatusChanged is emitted after an asset request moves to a new status.
type RequestStatusChanged struct {
	RequestID      string    `json:"request_id"`
	TraceID        string    `json:"trace_id,omitempty"` // For distributed tracing
	AssetID        string    `json:"asset_id"`
	AssetName      string    `json:"asset_name"`
	CompanyName    string    `json:"company_name"`
	RequesterEmail string    `json:"requester_email"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	ChangedBy      string    `json:"changed_by"`
	ChangedAt      time.Time `json:"changed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRequestStatusChanged publishes a status change for downstream consumers
	PublishRequestStatusChanged(ctx context.Context, event *RequestStatusChanged) error

	// Close releases any resources held by the publisher
	Close() error
}
