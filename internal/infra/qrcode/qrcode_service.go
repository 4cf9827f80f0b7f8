package qrcode

import (
	"errors"
	"fmt"

	"library/config"
	"library/internal/domain/constants"
	"library/internal/domain/service"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

// ErrInvalidPayload is returned for QR text that is not a loan return payload.
var ErrInvalidPayload = errors.New("invalid loan QR payload")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// Payload is the JSON text encoded in a loan QR code
type Payload struct {
	LoanID string `json:"loan_id"`
	Type   string `json:"type"`
}

// NewQRCodeService creates the QR code service from configuration
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, ""
	if cfg.QRCode != nil {
		size, level = cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel
	}

	return newQRCodeService(size, level)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateLoanQR renders a PNG QR code that the return desk scans to close the loan
func (s *qrcodeService) GenerateLoanQR(loanID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(Payload{
		LoanID: loanID.String(),
		Type:   constants.QRPayloadTypeLoanReturn,
	})
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

// ParseLoanQR extracts the loan id from scanned QR text
func (s *qrcodeService) ParseLoanQR(qrData string) (uuid.UUID, error) {
	var data Payload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed data: %v", ErrInvalidPayload, err)
	}

	if data.Type != constants.QRPayloadTypeLoanReturn {
		return uuid.Nil, fmt.Errorf("%w: unexpected type %q", ErrInvalidPayload, data.Type)
	}

	loanID, err := uuid.Parse(data.LoanID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad loan id: %v", ErrInvalidPayload, err)
	}

	return loanID, nil
}
