package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/gomonto/payments/internal/pkg/constants"
	"github.com/gomonto/payments/internal/pkg/models"
	"github.com/gomonto/payments/services/payments"
)

// CreateTransaction inserts a transaction row. Called after the provider
// has accepted the payment; the row is the local audit record.
func (r *PaymentRepo) CreateTransaction(ctx context.Context, txn *models.PaymentTransaction) error {
	now := time.Now()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	query := `
		INSERT INTO payment_transactions (
			id, amount, currency, description,
			customer_name, customer_surname, customer_email, customer_phone,
			customer_country, customer_state, customer_city,
			channels, payment_method, reservation_id, credit_purchase_id,
			provider_ref, provider_response, status, created_at, updated_at
		) VALUES (
			:id, :amount, :currency, :description,
			:customer_name, :customer_surname, :customer_email, :customer_phone,
			:customer_country, :customer_state, :customer_city,
			:channels, :payment_method, :reservation_id, :credit_purchase_id,
			:provider_ref, :provider_response, :status, :created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, txn)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// GetTransaction fetches a transaction by its generated id
func (r *PaymentRepo) GetTransaction(ctx context.Context, transactionID string) (*models.PaymentTransaction, error) {
	query := `
		SELECT id, amount, currency, description,
			customer_name, customer_surname, customer_email, customer_phone,
			customer_country, customer_state, customer_city,
			channels, payment_method, reservation_id, credit_purchase_id,
			provider_ref, provider_response, status, created_at, updated_at
		FROM payment_transactions
		WHERE id = $1
	`

	var txn models.PaymentTransaction
	err := r.db.GetContext(ctx, &txn, query, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &txn, nil
}

// ListTransactions returns transactions matching the filter, newest first
func (r *PaymentRepo) ListTransactions(ctx context.Context, filter *models.TransactionFilter) ([]models.PaymentTransaction, error) {
	query := `
		SELECT id, amount, currency, description,
			customer_name, customer_surname, customer_email, customer_phone,
			customer_country, customer_state, customer_city,
			channels, payment_method, reservation_id, credit_purchase_id,
			provider_ref, provider_response, status, created_at, updated_at
		FROM payment_transactions
		WHERE ($1 = '' OR reservation_id = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	txns := []models.PaymentTransaction{}
	err := r.db.SelectContext(ctx, &txns, query, filter.ReservationID, filter.Status, limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txns, nil
}

// UpdateTransactionStatus transitions a transaction and records what the
// provider reported. Pending rows are the only ones that move; completed
// and failed are terminal.
func (r *PaymentRepo) UpdateTransactionStatus(ctx context.Context, transactionID, status, providerRef, paymentMethod string) error {
	query := `
		UPDATE payment_transactions
		SET status = $2,
			provider_ref = CASE WHEN $3 = '' THEN provider_ref ELSE $3 END,
			payment_method = CASE WHEN $4 = '' THEN payment_method ELSE $4 END,
			updated_at = $5
		WHERE id = $1 AND status = 'pending'
	`

	_, err := r.db.ExecContext(ctx, query, transactionID, status, providerRef, paymentMethod, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}

	return nil
}

// CacheProviderStatus stores a provider check result with a short TTL
func (r *PaymentRepo) CacheProviderStatus(ctx context.Context, transactionID, status string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyProviderStatus, transactionID)
	return r.redisClient.Set(ctx, key, status, ttl)
}

// GetCachedProviderStatus returns a cached provider status, empty when absent
func (r *PaymentRepo) GetCachedProviderStatus(ctx context.Context, transactionID string) (string, error) {
	key := fmt.Sprintf(constants.KeyProviderStatus, transactionID)
	status, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get cached provider status: %w", err)
	}
	return status, nil
}
