package gateway

import (
	"context"

	"github.com/gomonto/payments/internal/pkg/models"
	nsqpkg "github.com/gomonto/payments/internal/pkg/nsq"
	"github.com/gomonto/payments/services/payments"
	"github.com/gomonto/payments/services/payments/gateway/cinetpay"
)

// PaymentGW bundles the aggregator client and the NSQ event stream
type PaymentGW struct {
	provider *cinetpay.Client
	producer *nsqpkg.Producer
}

// NewPaymentGW creates a new gateway instance with the CinetPay client and
// the NSQ producer
func NewPaymentGW(cfg *models.Config, producer *nsqpkg.Producer) payments.PaymentGW {
	return &PaymentGW{
		provider: cinetpay.NewClient(cfg.CinetPay.BaseURL, cfg.CinetPay.APIKey, cfg.CinetPay.SiteID),
		producer: producer,
	}
}

// CreatePayment delegates to the aggregator's payment-creation endpoint
func (g *PaymentGW) CreatePayment(ctx context.Context, req *cinetpay.PaymentRequest) (*cinetpay.PaymentResponse, error) {
	return g.provider.CreatePayment(ctx, req)
}

// CheckPayment delegates to the aggregator's status-check endpoint
func (g *PaymentGW) CheckPayment(ctx context.Context, transactionID string) (*cinetpay.CheckResponse, error) {
	return g.provider.CheckPayment(ctx, transactionID)
}

// PublishPaymentEvent emits a payment lifecycle event to NSQ
func (g *PaymentGW) PublishPaymentEvent(topic string, event *models.PaymentEvent) error {
	return g.producer.Publish(topic, event)
}
