package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"riskmonitor/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const alertQRType = "alert"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	AlertID int64  `json:"alert_id"`
	Type    string `json:"type"`
	URL     string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance. When baseURL is
// set the payload also carries a link to the alert.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToLower(errorCorrectionLevel) {
	case "l", "low":
		level = qrcode.Low
	case "q", "high":
		level = qrcode.High
	case "h", "highest":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateAlertQR generates a PNG share code for an alert
func (s *qrcodeService) GenerateAlertQR(alertID int64) ([]byte, error) {
	data := QRCodeData{
		AlertID: alertID,
		Type:    alertQRType,
	}
	if s.baseURL != "" {
		data.URL = fmt.Sprintf("%s/api/v1/alerts/%d", s.baseURL, alertID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseAlertQR parses scanned QR code data and returns the alert ID
func (s *qrcodeService) ParseAlertQR(qrData string) (int64, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != alertQRType {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.AlertID <= 0 {
		return 0, fmt.Errorf("invalid alert ID: %d", data.AlertID)
	}

	return data.AlertID, nil
}
