package service

import (
	"github.com/google/uuid"
)

// LabelService renders printable asset tags.
type LabelService interface {
	// GenerateAssetLabel returns a PNG QR code that encodes the asset reference.
	GenerateAssetLabel(assetID uuid.UUID, company string) ([]byte, error)

	// ParseAssetLabel decodes the payload scanned from a label and returns the asset ID.
	ParseAssetLabel(payload string) (uuid.UUID, error)
}
