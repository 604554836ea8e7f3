package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gomonto/payments/internal/pkg/constants"
	"github.com/gomonto/payments/internal/pkg/logger"
	"github.com/gomonto/payments/internal/pkg/models"
	"github.com/gomonto/payments/internal/pkg/phone"
	"github.com/gomonto/payments/internal/utils"
	"github.com/gomonto/payments/services/payments"
	"github.com/gomonto/payments/services/payments/billing"
	"github.com/gomonto/payments/services/payments/gateway/cinetpay"
)

const (
	transactionIDPrefix = "GM"
	placeholderEmail    = "client@gomonto.com"
	base36Alphabet      = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// generateTransactionID builds a prefix + millisecond timestamp + random
// base-36 suffix id, uppercased. Collision probability is accepted as
// negligible; no uniqueness check is performed before use.
func generateTransactionID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}
	return fmt.Sprintf("%s-%d-%s", transactionIDPrefix, time.Now().UnixMilli(), strings.ToUpper(string(suffix)))
}

// InitiatePayment shapes the payment request, calls the aggregator and
// records the attempt.
//
// Failure semantics are deliberate and must stay this way: credential and
// phone validation happen before any external call, a provider rejection
// is passed through untouched, and a local insert failure after the
// provider has accepted the payment is logged but does not fail the
// response. The customer's in-flight redirect wins over local bookkeeping.
func (uc *PaymentUC) InitiatePayment(ctx context.Context, req *models.InitiatePaymentRequest, callerID string) (*models.InitiatePaymentResponse, error) {
	if uc.cfg.CinetPay.APIKey == "" || uc.cfg.CinetPay.SiteID == "" {
		return nil, payments.ErrProviderNotConfigured
	}

	transactionID := generateTransactionID()

	phoneNumber := strings.TrimSpace(req.CustomerPhone)
	if phoneNumber == "" && req.ReservationID != "" {
		reservation, err := uc.repo.GetReservation(ctx, req.ReservationID)
		if err != nil {
			logger.Warn("Could not resolve phone from reservation",
				logger.String("reservation_id", req.ReservationID),
				logger.ErrorField(err),
			)
		} else {
			phoneNumber = strings.TrimSpace(reservation.RenterPhone)
		}
	}
	if phoneNumber == "" {
		return nil, payments.ErrMissingPhone
	}

	country := phone.Country(phoneNumber)
	profile := billing.Resolve(country, phoneNumber)

	channels := req.Channels
	if channels == "" {
		channels = profile.Channels
	}

	firstName, surname := utils.SplitFullName(req.CustomerName, req.CustomerSurname)

	currency := req.Currency
	if currency == "" {
		currency = uc.cfg.Payment.DefaultCurrency
	}
	// The aggregator rejects malformed emails, so an unusable address is
	// replaced rather than forwarded
	email := strings.TrimSpace(req.CustomerEmail)
	if !utils.IsValidEmail(email) {
		email = placeholderEmail
	}
	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = uc.cfg.Payment.ReturnURL
	}
	notifyURL := req.NotifyURL
	if notifyURL == "" {
		notifyURL = uc.cfg.Payment.NotifyURL
	}

	amount := int(math.Round(req.Amount))

	metadata, _ := json.Marshal(map[string]string{
		"reservation_id":     req.ReservationID,
		"credit_purchase_id": req.CreditPurchaseID,
	})

	providerReq := &cinetpay.PaymentRequest{
		TransactionID:       transactionID,
		Amount:              amount,
		Currency:            currency,
		Description:         req.Description,
		CustomerName:        firstName,
		CustomerSurname:     surname,
		CustomerEmail:       email,
		CustomerPhoneNumber: phoneNumber,
		CustomerAddress:     profile.City,
		CustomerCity:        profile.City,
		CustomerCountry:     profile.Country,
		CustomerState:       profile.State,
		CustomerZipCode:     "00000",
		NotifyURL:           notifyURL,
		ReturnURL:           returnURL,
		Channels:            channels,
		Metadata:            string(metadata),
	}

	logger.Info("Initiating payment",
		logger.String("transaction_id", transactionID),
		logger.String("caller_id", callerID),
		logger.String("detected_country", country),
		logger.String("billing_country", profile.Country),
		logger.String("channels", channels),
		logger.Int("amount", amount),
		logger.String("phone", utils.MaskPhoneNumber(phoneNumber)),
	)

	resp, err := uc.gw.CreatePayment(ctx, providerReq)
	if err != nil {
		return nil, fmt.Errorf("provider call failed: %w", err)
	}
	if !resp.Created() {
		return nil, &payments.ProviderRejectionError{Message: resp.Message, Raw: resp.Raw}
	}

	txn := &models.PaymentTransaction{
		ID:               transactionID,
		Amount:           amount,
		Currency:         currency,
		Description:      req.Description,
		CustomerName:     firstName,
		CustomerSurname:  surname,
		CustomerEmail:    email,
		CustomerPhone:    phoneNumber,
		CustomerCountry:  profile.Country,
		CustomerState:    profile.State,
		CustomerCity:     profile.City,
		Channels:         channels,
		PaymentMethod:    channels,
		ProviderRef:      resp.Data.PaymentToken,
		ProviderResponse: resp.Raw,
		Status:           models.TransactionStatusPending,
	}
	if req.ReservationID != "" {
		txn.ReservationID = &req.ReservationID
	}
	if req.CreditPurchaseID != "" {
		txn.CreditPurchaseID = &req.CreditPurchaseID
	}

	// The payment already exists upstream; a failed local insert is logged
	// and swallowed so the customer is not stranded mid-payment.
	if err := uc.repo.CreateTransaction(ctx, txn); err != nil {
		logger.Error("Failed to persist transaction after provider accepted payment",
			logger.String("transaction_id", transactionID),
			logger.ErrorField(err),
		)
	}

	if err := uc.gw.PublishPaymentEvent(constants.TopicPaymentInitiated, uc.buildEvent(txn)); err != nil {
		logger.Warn("Failed to publish payment initiated event",
			logger.String("transaction_id", transactionID),
			logger.ErrorField(err),
		)
	}

	return &models.InitiatePaymentResponse{
		TransactionID: transactionID,
		PaymentURL:    resp.Data.PaymentURL,
		PaymentToken:  resp.Data.PaymentToken,
	}, nil
}

func (uc *PaymentUC) buildEvent(txn *models.PaymentTransaction) *models.PaymentEvent {
	event := &models.PaymentEvent{
		EventID:       uuid.New().String(),
		TransactionID: txn.ID,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Status:        txn.Status,
		OccurredAt:    time.Now(),
	}
	if txn.ReservationID != nil {
		event.ReservationID = *txn.ReservationID
	}
	return event
}
