package constants

// NSQ topics
const (
	// Payment lifecycle, consumed by the notification service
	TopicPaymentInitiated = "payment.initiated"
	TopicPaymentCompleted = "payment.completed"
	TopicPaymentFailed    = "payment.failed"
)
