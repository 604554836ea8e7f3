package usecase

import (
	"github.com/gomonto/payments/internal/pkg/models"
	"github.com/gomonto/payments/services/payments"
)

// PaymentUC implements the payment usecase
type PaymentUC struct {
	repo payments.PaymentRepo
	gw   payments.PaymentGW
	cfg  *models.Config
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(
	repo payments.PaymentRepo,
	gw payments.PaymentGW,
	cfg *models.Config,
) *PaymentUC {
	return &PaymentUC{
		repo: repo,
		gw:   gw,
		cfg:  cfg,
	}
}
