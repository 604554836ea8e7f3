package constants

// Redis key formats
const (
	// Payment Service
	KeyProviderStatus = "payment:provider-status:%s" // Format: payment:provider-status:{transaction_id}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{identifier}
)
