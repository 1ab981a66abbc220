package service

// QRCodeService generates the QR codes consumers scan to verify a business.
type QRCodeService interface {
	// GenerateBusinessQR encodes a business verification payload as PNG bytes.
	GenerateBusinessQR(licenseNumber string) ([]byte, error)

	// ParseBusinessQR extracts the license number from scanned QR data.
	ParseBusinessQR(qrData string) (string, error)
}
