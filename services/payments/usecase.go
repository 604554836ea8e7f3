package payments

import (
	"context"

	"github.com/gomonto/payments/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/gomonto/payments/services/payments PaymentUC

// PaymentUC represents the payment usecase interface
type PaymentUC interface {
	// InitiatePayment shapes a payment request, calls the aggregator and
	// records the attempt. callerID is best-effort identification from the
	// bearer token and may be empty.
	InitiatePayment(ctx context.Context, req *models.InitiatePaymentRequest, callerID string) (*models.InitiatePaymentResponse, error)

	// GetPayment returns a transaction, refreshing a pending status from
	// the aggregator.
	GetPayment(ctx context.Context, transactionID string) (*models.PaymentTransaction, error)

	// ListPayments returns transactions for the dashboard
	ListPayments(ctx context.Context, filter *models.TransactionFilter) ([]models.PaymentTransaction, error)

	// HandleNotification processes a provider webhook callback for a
	// transaction; the payload is never trusted, the status is re-checked
	// server-side.
	HandleNotification(ctx context.Context, transactionID string) error
}
