package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateAlertQR renders a PNG share code pointing at the alert
	GenerateAlertQR(alertID int64) ([]byte, error)

	// ParseAlertQR parses QR code data and returns the alert ID
	ParseAlertQR(qrData string) (int64, error)
}
