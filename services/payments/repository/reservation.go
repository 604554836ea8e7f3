package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gomonto/payments/internal/pkg/models"
)

// GetReservation reads a reservation by id. The payment flow only uses
// it to back-fill a missing renter phone number.
func (r *PaymentRepo) GetReservation(ctx context.Context, reservationID string) (*models.Reservation, error) {
	query := `
		SELECT id, vehicle_id, renter_id, renter_phone, status,
			deposit_paid, deposit_paid_at, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`

	var reservation models.Reservation
	err := r.db.GetContext(ctx, &reservation, query, reservationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reservation not found")
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return &reservation, nil
}

// MarkReservationDepositPaid flags the reservation deposit as settled
// once the provider confirms the payment
func (r *PaymentRepo) MarkReservationDepositPaid(ctx context.Context, reservationID string) error {
	query := `
		UPDATE reservations
		SET deposit_paid = TRUE, deposit_paid_at = $2, updated_at = $2
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, reservationID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark reservation deposit paid: %w", err)
	}

	return nil
}
