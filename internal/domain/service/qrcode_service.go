package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateLoanQR generates a QR code identifying a loan for the return desk
	GenerateLoanQR(loanID uuid.UUID) ([]byte, error)

	// ParseLoanQR parses QR code data and returns the loan ID
	ParseLoanQR(qrData string) (uuid.UUID, error)
}
