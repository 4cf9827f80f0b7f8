// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Loan event types.
const (
	EventLoanGranted  = "loan.granted"
	EventLoanReturned = "loan.returned"
)

// Echo context keys set by the auth middleware.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// QRPayloadTypeLoanReturn marks a QR payload that identifies a loan to return.
const QRPayloadTypeLoanReturn = "loan_return"
