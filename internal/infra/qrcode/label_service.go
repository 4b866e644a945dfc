// Package qrcode renders printable QR labels for assets.
package qrcode

import (
	"net/url"
	"strings"

	"assethub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "assethub://assets"
)

type labelService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewLabelService creates a label service; the payload of every label is <baseURL>/<assetID>?company=<company>.
func NewLabelService(size int, errorCorrectionLevel, baseURL string) service.LabelService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &labelService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateAssetLabel encodes the asset reference into a PNG QR code.
func (s *labelService) GenerateAssetLabel(assetID uuid.UUID, company string) ([]byte, error) {
	qrCode, err := qrcode.New(s.payload(assetID, company), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseAssetLabel extracts the asset ID from a scanned label payload.
func (s *labelService) ParseAssetLabel(payload string) (uuid.UUID, error) {
	payload = strings.TrimSpace(payload)
	if !strings.HasPrefix(payload, s.baseURL+"/") {
		return uuid.Nil, errors.Errorf("not an asset label: %q", payload)
	}

	if _, err := url.Parse(payload); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse label payload")
	}

	path, _, _ := strings.Cut(payload, "?")
	assetID, err := uuid.Parse(strings.TrimPrefix(path, s.baseURL+"/"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse asset ID")
	}

	return assetID, nil
}

func (s *labelService) payload(assetID uuid.UUID, company string) string {
	query := url.Values{}
	query.Set("company", company)

	return s.baseURL + "/" + assetID.String() + "?" + query.Encode()
}
