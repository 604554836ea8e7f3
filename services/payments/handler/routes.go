package handler

import (
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/gomonto/payments/internal/pkg/database"
	"github.com/gomonto/payments/internal/pkg/middleware"
	"github.com/gomonto/payments/internal/pkg/models"
	"github.com/gomonto/payments/services/payments/handler/http"
)

// Handler coordinates the HTTP handlers for the payment service
type Handler struct {
	paymentHandler *http.PaymentHandler
	redisClient    *database.RedisClient
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	paymentHandler *http.PaymentHandler,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		paymentHandler: paymentHandler,
		redisClient:    redisClient,
		cfg:            cfg,
	}
}

// GetJWTMiddleware returns the JWT middleware guarding dashboard routes
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
	})
}

// RegisterRoutes registers all payment routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/payments")

	// Initiation identifies the caller on a best-effort basis only; an
	// unauthenticated renter mid-checkout must still be able to pay.
	group.POST("",
		h.paymentHandler.InitiatePayment,
		middleware.BestEffortIdentity(h.cfg.JWT),
		middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: h.redisClient.GetClient(),
			Key:         "payments:initiate",
			Limit:       h.cfg.Payment.RateLimit,
			Period:      time.Minute,
		}),
	)

	// Provider webhook, no authentication (verified by server-side re-check)
	group.POST("/notify", h.paymentHandler.HandleNotification)

	// Status polling from the checkout return page
	group.GET("/:id", h.paymentHandler.GetPayment)

	// Dashboard listing requires a valid token
	group.GET("", h.paymentHandler.ListPayments, h.GetJWTMiddleware())
}
