package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gomonto/payments/internal/pkg/logger"
	"github.com/gomonto/payments/internal/pkg/models"
	"github.com/gomonto/payments/internal/utils"
	"github.com/gomonto/payments/services/payments"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// initiateResponse mirrors the flat response contract of the initiation
// endpoint; dashboard clients depend on this exact shape.
type initiateResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	PaymentURL    string `json:"payment_url"`
	PaymentToken  string `json:"payment_token"`
}

// InitiatePayment handles payment initiation requests
func (h *PaymentHandler) InitiatePayment(c echo.Context) error {
	var req models.InitiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for payment initiation",
			logger.ErrorField(err),
			logger.String("endpoint", "InitiatePayment"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		msg := "Invalid request payload"
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if m, ok := httpErr.Message.(string); ok {
				msg = m
			}
		}
		return utils.BadRequestResponse(c, msg)
	}

	callerID := ""
	if userID := c.Get("user_id"); userID != nil {
		callerID = fmt.Sprintf("%v", userID)
	}

	resp, err := h.paymentUC.InitiatePayment(c.Request().Context(), &req, callerID)
	if err != nil {
		return h.mapInitiationError(c, err)
	}

	return c.JSON(http.StatusOK, initiateResponse{
		Success:       true,
		TransactionID: resp.TransactionID,
		PaymentURL:    resp.PaymentURL,
		PaymentToken:  resp.PaymentToken,
	})
}

// mapInitiationError translates usecase error classes onto the HTTP
// contract: 500 for missing credentials, 400 with a missing_field signal
// for the phone requirement, 400 with the raw provider payload for
// rejections, generic 500 for everything else.
func (h *PaymentHandler) mapInitiationError(c echo.Context, err error) error {
	var rejection *payments.ProviderRejectionError

	switch {
	case errors.Is(err, payments.ErrProviderNotConfigured):
		logger.Error("Payment initiation without provider credentials")
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Payment provider not configured")

	case errors.Is(err, payments.ErrMissingPhone):
		return utils.ErrorResponseWithDetails(c, http.StatusBadRequest, err.Error(), map[string]string{
			"missing_field": "customer_phone",
		})

	case errors.As(err, &rejection):
		return utils.ErrorResponseWithDetails(c, http.StatusBadRequest, rejection.Message, rejection.Raw)

	default:
		logger.Error("Payment initiation failed", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}
}

// GetPayment handles transaction retrieval, refreshing pending statuses
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	transactionID := c.Param("id")
	if transactionID == "" {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	txn, err := h.paymentUC.GetPayment(c.Request().Context(), transactionID)
	if err != nil {
		if errors.Is(err, payments.ErrTransactionNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		logger.Error("Failed to retrieve transaction",
			logger.String("transaction_id", transactionID),
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to retrieve transaction")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", txn)
}

// ListPayments handles transaction listing for the dashboard
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	filter := &models.TransactionFilter{
		ReservationID: c.QueryParam("reservation_id"),
		Status:        c.QueryParam("status"),
	}
	echo.QueryParamsBinder(c).
		Int("limit", &filter.Limit).
		Int("offset", &filter.Offset)

	txns, err := h.paymentUC.ListPayments(c.Request().Context(), filter)
	if err != nil {
		logger.Error("Failed to list transactions", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", txns)
}

// HandleNotification handles the provider's server-to-server callback.
// The provider posts the transaction id as form data; once the callback
// has been processed the endpoint answers 200 to stop redelivery.
func (h *PaymentHandler) HandleNotification(c echo.Context) error {
	transactionID := c.FormValue("cpm_trans_id")
	if transactionID == "" {
		var payload struct {
			TransactionID string `json:"transaction_id"`
		}
		if err := c.Bind(&payload); err == nil {
			transactionID = payload.TransactionID
		}
	}
	if transactionID == "" {
		return utils.BadRequestResponse(c, "Missing transaction ID")
	}

	err := h.paymentUC.HandleNotification(c.Request().Context(), transactionID)
	if err != nil {
		if errors.Is(err, payments.ErrTransactionNotFound) {
			// Nothing to settle locally; acknowledge so the provider stops retrying
			logger.Warn("Notification for unknown transaction",
				logger.String("transaction_id", transactionID),
			)
			return c.NoContent(http.StatusOK)
		}
		logger.Error("Failed to process payment notification",
			logger.String("transaction_id", transactionID),
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to process notification")
	}

	return c.NoContent(http.StatusOK)
}
