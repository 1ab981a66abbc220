package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	for _, level := range []string{"L", "M", "Q", "H", "h", "invalid"} {
		t.Run(level, func(t *testing.T) {
			assert.NotNil(t, NewQRCodeService(256, level))
		})
	}
}

func TestQRCodeService_GenerateBusinessQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GenerateBusinessQR("FSSAI-10020042")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateBusinessQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{0, 128, 512} {
		qrBytes, err := NewQRCodeService(size, "M").GenerateBusinessQR("LIC-1")
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_GenerateBusinessQR_EmptyLicense(t *testing.T) {
	_, err := NewQRCodeService(256, "M").GenerateBusinessQR("")
	assert.Error(t, err)
}

func TestQRCodeService_ParseBusinessQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	jsonData, err := json.Marshal(QRCodeData{LicenseNumber: "LIC-42", Type: BusinessVerificationType})
	require.NoError(t, err)

	license, err := svc.ParseBusinessQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "LIC-42", license)
}

func TestQRCodeService_ParseBusinessQR_Errors(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"invalid json", "invalid json", "failed to unmarshal QR code data"},
		{"wrong type", `{"license_number":"LIC-1","type":"subscription"}`, "invalid QR code type"},
		{"missing license", `{"type":"business_verification"}`, "no license number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseBusinessQR(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
