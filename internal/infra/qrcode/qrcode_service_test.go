package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "low"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "highest"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(256, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateAlertQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "medium", "https://risk.example.com/")

		qrBytes, err := service.GenerateAlertQR(1714564800000)
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	}
}

func TestQRCodeService_ParseAlertQR(t *testing.T) {
	service := NewQRCodeService(256, "medium", "")

	tests := []struct {
		name    string
		data    QRCodeData
		raw     string
		want    int64
		wantErr string
	}{
		{
			name: "valid",
			data: QRCodeData{AlertID: 1714564800000, Type: "alert", URL: "https://risk.example.com/api/v1/alerts/1714564800000"},
			want: 1714564800000,
		},
		{
			name:    "invalid json",
			raw:     "invalid json",
			wantErr: "failed to unmarshal QR code data",
		},
		{
			name:    "invalid type",
			data:    QRCodeData{AlertID: 1, Type: "subscription"},
			wantErr: "invalid QR code type",
		},
		{
			name:    "missing id",
			data:    QRCodeData{Type: "alert"},
			wantErr: "invalid alert ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.raw
			if raw == "" {
				encoded, err := json.Marshal(tt.data)
				require.NoError(t, err)
				raw = string(encoded)
			}

			got, err := service.ParseAlertQR(raw)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
