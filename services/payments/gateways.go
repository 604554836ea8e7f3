package payments

import (
	"context"

	"github.com/gomonto/payments/internal/pkg/models"
	"github.com/gomonto/payments/services/payments/gateway/cinetpay"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/gomonto/payments/services/payments PaymentGW

// PaymentGW represents the payment gateway interface: the CinetPay
// aggregator plus the event stream consumed by the notification service
type PaymentGW interface {
	// CreatePayment calls the aggregator's payment-creation endpoint
	CreatePayment(ctx context.Context, req *cinetpay.PaymentRequest) (*cinetpay.PaymentResponse, error)

	// CheckPayment calls the aggregator's status-check endpoint
	CheckPayment(ctx context.Context, transactionID string) (*cinetpay.CheckResponse, error)

	// PublishPaymentEvent emits a payment lifecycle event
	PublishPaymentEvent(topic string, event *models.PaymentEvent) error
}
