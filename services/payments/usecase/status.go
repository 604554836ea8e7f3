package usecase

import (
	"context"
	"time"

	"github.com/gomonto/payments/internal/pkg/constants"
	"github.com/gomonto/payments/internal/pkg/logger"
	"github.com/gomonto/payments/internal/pkg/models"
	"github.com/gomonto/payments/services/payments/gateway/cinetpay"
)

// providerStatusCacheTTL bounds how often dashboard polling hits the
// aggregator's check endpoint for a still-pending transaction.
const providerStatusCacheTTL = 30 * time.Second

// GetPayment returns a transaction, refreshing a pending status from the
// aggregator. A failed refresh degrades to the stored pending state.
func (uc *PaymentUC) GetPayment(ctx context.Context, transactionID string) (*models.PaymentTransaction, error) {
	txn, err := uc.repo.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if txn.Status != models.TransactionStatusPending {
		return txn, nil
	}

	cached, err := uc.repo.GetCachedProviderStatus(ctx, transactionID)
	if err != nil {
		logger.Warn("Provider status cache read failed",
			logger.String("transaction_id", transactionID),
			logger.ErrorField(err),
		)
	}
	if cached == cinetpay.StatusPending {
		// Checked recently and still pending, skip the provider round trip
		return txn, nil
	}

	return uc.refreshFromProvider(ctx, txn), nil
}

// ListPayments returns transactions for the dashboard
func (uc *PaymentUC) ListPayments(ctx context.Context, filter *models.TransactionFilter) ([]models.PaymentTransaction, error) {
	return uc.repo.ListTransactions(ctx, filter)
}

// HandleNotification processes a provider webhook callback. The webhook
// payload is never trusted: the transaction status is re-checked
// server-side before any transition is applied. Already-settled
// transactions are left alone, which makes redelivery harmless.
func (uc *PaymentUC) HandleNotification(ctx context.Context, transactionID string) error {
	txn, err := uc.repo.GetTransaction(ctx, transactionID)
	if err != nil {
		return err
	}

	if txn.Status != models.TransactionStatusPending {
		return nil
	}

	uc.refreshFromProvider(ctx, txn)
	return nil
}

// refreshFromProvider checks the transaction with the aggregator and
// applies a completed/failed transition when the provider reports a
// terminal status. Check failures leave the transaction pending.
func (uc *PaymentUC) refreshFromProvider(ctx context.Context, txn *models.PaymentTransaction) *models.PaymentTransaction {
	check, err := uc.gw.CheckPayment(ctx, txn.ID)
	if err != nil {
		logger.Warn("Provider status check failed",
			logger.String("transaction_id", txn.ID),
			logger.ErrorField(err),
		)
		return txn
	}

	switch check.Data.Status {
	case cinetpay.StatusAccepted:
		uc.settle(ctx, txn, models.TransactionStatusCompleted, check)
	case cinetpay.StatusRefused:
		uc.settle(ctx, txn, models.TransactionStatusFailed, check)
	default:
		// Still pending on the provider side; remember that briefly
		if err := uc.repo.CacheProviderStatus(ctx, txn.ID, cinetpay.StatusPending, providerStatusCacheTTL); err != nil {
			logger.Warn("Provider status cache write failed",
				logger.String("transaction_id", txn.ID),
				logger.ErrorField(err),
			)
		}
	}

	return txn
}

func (uc *PaymentUC) settle(ctx context.Context, txn *models.PaymentTransaction, status string, check *cinetpay.CheckResponse) {
	if err := uc.repo.UpdateTransactionStatus(ctx, txn.ID, status, check.Data.OperatorID, check.Data.PaymentMethod); err != nil {
		logger.Error("Failed to update transaction status",
			logger.String("transaction_id", txn.ID),
			logger.String("status", status),
			logger.ErrorField(err),
		)
		return
	}
	txn.Status = status
	if check.Data.PaymentMethod != "" {
		txn.PaymentMethod = check.Data.PaymentMethod
	}

	if status == models.TransactionStatusCompleted && txn.ReservationID != nil {
		if err := uc.repo.MarkReservationDepositPaid(ctx, *txn.ReservationID); err != nil {
			logger.Error("Failed to mark reservation deposit paid",
				logger.String("transaction_id", txn.ID),
				logger.String("reservation_id", *txn.ReservationID),
				logger.ErrorField(err),
			)
		}
	}

	topic := constants.TopicPaymentCompleted
	if status == models.TransactionStatusFailed {
		topic = constants.TopicPaymentFailed
	}
	if err := uc.gw.PublishPaymentEvent(topic, uc.buildEvent(txn)); err != nil {
		logger.Warn("Failed to publish payment event",
			logger.String("transaction_id", txn.ID),
			logger.String("topic", topic),
			logger.ErrorField(err),
		)
	}

	logger.Info("Transaction settled",
		logger.String("transaction_id", txn.ID),
		logger.String("status", status),
		logger.String("payment_method", check.Data.PaymentMethod),
	)
}
