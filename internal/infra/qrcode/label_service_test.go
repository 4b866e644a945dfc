package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelService_GenerateAssetLabel(t *testing.T) {
	levels := []string{"L", "M", "Q", "H", "invalid"}

	for _, level := range levels {
		t.Run(level, func(t *testing.T) {
			labels := NewLabelService(256, level, "")

			png, err := labels.GenerateAssetLabel(uuid.New(), "acme")
			require.NoError(t, err)
			require.Greater(t, len(png), 4)

			// PNG magic number
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
		})
	}
}

func TestLabelService_PayloadRoundTrip(t *testing.T) {
	labels := NewLabelService(128, "M", "https://assets.example.test/a/").(*labelService)
	assetID := uuid.New()

	payload := labels.payload(assetID, "Acme & Co")
	assert.Equal(t, "https://assets.example.test/a/"+assetID.String()+"?company=Acme+%26+Co", payload)

	parsed, err := labels.ParseAssetLabel(payload)
	require.NoError(t, err)
	assert.Equal(t, assetID, parsed)
}

func TestLabelService_ParseAssetLabel_Rejects(t *testing.T) {
	labels := NewLabelService(0, "", "")

	tests := []struct {
		name    string
		payload string
	}{
		{name: "foreign scheme", payload: "https://elsewhere.test/" + uuid.NewString()},
		{name: "missing id", payload: "assethub://assets/?company=acme"},
		{name: "bad id", payload: "assethub://assets/not-a-uuid?company=acme"},
		{name: "empty", payload: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := labels.ParseAssetLabel(tt.payload)
			assert.Error(t, err)
		})
	}
}
