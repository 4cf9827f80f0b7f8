package qrcode

import (
	"testing"

	"library/config"
	"library/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.QRCodeConfig
		wantSize  int
		wantLevel qrcode.RecoveryLevel
	}{
		{"Low error correction", &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "L"}, 128, qrcode.Low},
		{"Quartile error correction", &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "Q"}, 256, qrcode.High},
		{"Highest error correction", &config.QRCodeConfig{Size: 512, ErrorCorrectionLevel: "H"}, 512, qrcode.Highest},
		{"Unknown level falls back to medium", &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "X"}, 256, qrcode.Medium},
		{"Missing config", nil, defaultSize, qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(&config.Config{QRCode: tt.cfg}).(*qrcodeService)
			assert.Equal(t, tt.wantSize, svc.size)
			assert.Equal(t, tt.wantLevel, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GenerateLoanQR(t *testing.T) {
	svc := newQRCodeService(256, "M")

	qrBytes, err := svc.GenerateLoanQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseLoanQR(t *testing.T) {
	svc := newQRCodeService(256, "M")
	loanID := uuid.New()

	valid, err := json.Marshal(Payload{LoanID: loanID.String(), Type: constants.QRPayloadTypeLoanReturn})
	require.NoError(t, err)

	parsed, err := svc.ParseLoanQR(string(valid))
	require.NoError(t, err)
	assert.Equal(t, loanID, parsed)

	wrongType, err := json.Marshal(Payload{LoanID: loanID.String(), Type: "subscription"})
	require.NoError(t, err)
	badID, err := json.Marshal(Payload{LoanID: "not-a-uuid", Type: constants.QRPayloadTypeLoanReturn})
	require.NoError(t, err)

	for name, input := range map[string]string{
		"invalid json": "invalid json",
		"wrong type":   string(wrongType),
		"bad loan id":  string(badID),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseLoanQR(input)
			assert.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}
