package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestEvent is one recorded status change of an asset request, kept as request history.
type RequestEvent struct {
	ID             uuid.UUID     `json:"id"`
	MessageID      string        `json:"messageId"` // delivery id; a redelivered message is recorded once
	RequestID      uuid.UUID     `json:"requestId"`
	AssetName      string        `json:"assetName"`
	CompanyName    string        `json:"companyName"`
	RequesterEmail string        `json:"requesterEmail"`
	From           RequestStatus `json:"from"`
	To             RequestStatus `json:"to"`
	ChangedBy      string        `json:"changedBy"`
	ChangedAt      time.Time     `json:"changedAt"`
}
