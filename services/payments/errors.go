package payments

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error classes the HTTP layer maps onto status codes. Configuration and
// validation errors are surfaced before any external call is made.
var (
	// ErrProviderNotConfigured means the aggregator credentials are
	// missing. Fatal and non-retryable.
	ErrProviderNotConfigured = errors.New("Payment provider not configured")

	// ErrMissingPhone means no customer phone could be resolved, neither
	// from the request nor from the reservation. Phone is a hard
	// requirement of the aggregator.
	ErrMissingPhone = errors.New("customer phone number is required")

	// ErrTransactionNotFound means no transaction row exists for the id
	ErrTransactionNotFound = errors.New("transaction not found")
)

// ProviderRejectionError carries the aggregator's rejection untouched so
// callers can interpret provider-specific reasons.
type ProviderRejectionError struct {
	Message string
	Raw     json.RawMessage
}

func (e *ProviderRejectionError) Error() string {
	return fmt.Sprintf("payment provider rejected the request: %s", e.Message)
}
