package models

import (
	"encoding/json"
	"time"
)

// Transaction statuses. A transaction is created as pending and only
// moves to completed or failed through a provider status check or the
// provider webhook; rows are never deleted, they serve as an audit trail.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// PaymentTransaction represents one payment attempt against the aggregator
type PaymentTransaction struct {
	ID               string          `json:"transaction_id" db:"id"`
	Amount           int             `json:"amount" db:"amount"`
	Currency         string          `json:"currency" db:"currency"`
	Description      string          `json:"description" db:"description"`
	CustomerName     string          `json:"customer_name" db:"customer_name"`
	CustomerSurname  string          `json:"customer_surname" db:"customer_surname"`
	CustomerEmail    string          `json:"customer_email" db:"customer_email"`
	CustomerPhone    string          `json:"customer_phone" db:"customer_phone"`
	CustomerCountry  string          `json:"customer_country" db:"customer_country"`
	CustomerState    string          `json:"customer_state" db:"customer_state"`
	CustomerCity     string          `json:"customer_city" db:"customer_city"`
	Channels         string          `json:"channels" db:"channels"`
	PaymentMethod    string          `json:"payment_method" db:"payment_method"`
	ReservationID    *string         `json:"reservation_id,omitempty" db:"reservation_id"`
	CreditPurchaseID *string         `json:"credit_purchase_id,omitempty" db:"credit_purchase_id"`
	ProviderRef      string          `json:"provider_ref" db:"provider_ref"`
	ProviderResponse json.RawMessage `json:"provider_response,omitempty" db:"provider_response"`
	Status           string          `json:"status" db:"status"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// InitiatePaymentRequest is the inbound payload for payment initiation
type InitiatePaymentRequest struct {
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	Currency         string  `json:"currency"`
	Description      string  `json:"description" validate:"required"`
	CustomerName     string  `json:"customer_name" validate:"required"`
	CustomerSurname  string  `json:"customer_surname"`
	CustomerEmail    string  `json:"customer_email"`
	CustomerPhone    string  `json:"customer_phone"`
	ReservationID    string  `json:"reservation_id"`
	CreditPurchaseID string  `json:"credit_purchase_id"`
	ReturnURL        string  `json:"return_url"`
	NotifyURL        string  `json:"notify_url"`
	Channels         string  `json:"channels"`
}

// InitiatePaymentResponse is returned to the caller on successful initiation
type InitiatePaymentResponse struct {
	TransactionID string `json:"transaction_id"`
	PaymentURL    string `json:"payment_url"`
	PaymentToken  string `json:"payment_token"`
}

// TransactionFilter narrows transaction listing for the dashboard
type TransactionFilter struct {
	ReservationID string
	Status        string
	Limit         int
	Offset        int
}

// PaymentEvent is published to NSQ when a transaction changes state
type PaymentEvent struct {
	EventID       string    `json:"event_id"`
	TransactionID string    `json:"transaction_id"`
	ReservationID string    `json:"reservation_id,omitempty"`
	Amount        int       `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
