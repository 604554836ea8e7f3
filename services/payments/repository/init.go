package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/gomonto/payments/internal/pkg/database"
	"github.com/gomonto/payments/internal/pkg/models"
)

// PaymentRepo handles persistence for payment transactions and the
// reservation reads/updates the payment flow needs
type PaymentRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewPaymentRepo creates a new payment repository instance
func NewPaymentRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *PaymentRepo {
	return &PaymentRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
