package models

import (
	"time"
)

// Reservation is the booking record a payment may be attached to.
// The initiation flow only reads it to back-fill a missing renter phone;
// deposit marking happens after the provider confirms the payment.
type Reservation struct {
	ID            string     `json:"id" db:"id"`
	VehicleID     string     `json:"vehicle_id" db:"vehicle_id"`
	RenterID      string     `json:"renter_id" db:"renter_id"`
	RenterPhone   string     `json:"renter_phone" db:"renter_phone"`
	Status        string     `json:"status" db:"status"`
	DepositPaid   bool       `json:"deposit_paid" db:"deposit_paid"`
	DepositPaidAt *time.Time `json:"deposit_paid_at,omitempty" db:"deposit_paid_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}
