package payments

import (
	"context"
	"time"

	"github.com/gomonto/payments/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gomonto/payments/services/payments PaymentRepo

// PaymentRepo represents the payment repository interface
type PaymentRepo interface {
	// CreateTransaction inserts a transaction row with status pending
	CreateTransaction(ctx context.Context, txn *models.PaymentTransaction) error

	// GetTransaction fetches a transaction by its generated id
	GetTransaction(ctx context.Context, transactionID string) (*models.PaymentTransaction, error)

	// ListTransactions returns transactions matching the filter
	ListTransactions(ctx context.Context, filter *models.TransactionFilter) ([]models.PaymentTransaction, error)

	// UpdateTransactionStatus transitions a transaction and records the
	// provider reference and payment method reported by the check endpoint
	UpdateTransactionStatus(ctx context.Context, transactionID, status, providerRef, paymentMethod string) error

	// GetReservation reads a reservation, used to back-fill a missing
	// renter phone number
	GetReservation(ctx context.Context, reservationID string) (*models.Reservation, error)

	// MarkReservationDepositPaid flags the reservation deposit as settled
	MarkReservationDepositPaid(ctx context.Context, reservationID string) error

	// CacheProviderStatus stores a provider check result briefly to absorb
	// dashboard polling
	CacheProviderStatus(ctx context.Context, transactionID, status string, ttl time.Duration) error

	// GetCachedProviderStatus returns a cached provider status, empty when
	// absent
	GetCachedProviderStatus(ctx context.Context, transactionID string) (string, error)
}
