// Package cinetpay is the HTTP client for the CinetPay checkout API.
// Responses are kept opaque: the raw provider payload travels untouched
// up to the caller so dashboards can interpret provider-specific reasons.
package cinetpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	httpclient "github.com/gomonto/payments/internal/pkg/http"
)

// CodeCreated is the provider's documented success code for payment
// creation; CodeSuccess is the success code for status checks.
const (
	CodeCreated = "201"
	CodeSuccess = "00"
)

// Payment statuses reported by the check endpoint.
const (
	StatusAccepted = "ACCEPTED"
	StatusRefused  = "REFUSED"
	StatusPending  = "PENDING"
)

// PaymentRequest is the payment-creation payload.
type PaymentRequest struct {
	APIKey              string `json:"apikey"`
	SiteID              string `json:"site_id"`
	TransactionID       string `json:"transaction_id"`
	Amount              int    `json:"amount"`
	Currency            string `json:"currency"`
	Description         string `json:"description"`
	CustomerName        string `json:"customer_name"`
	CustomerSurname     string `json:"customer_surname"`
	CustomerEmail       string `json:"customer_email"`
	CustomerPhoneNumber string `json:"customer_phone_number"`
	CustomerAddress     string `json:"customer_address"`
	CustomerCity        string `json:"customer_city"`
	CustomerCountry     string `json:"customer_country"`
	CustomerState       string `json:"customer_state"`
	CustomerZipCode     string `json:"customer_zip_code"`
	NotifyURL           string `json:"notify_url"`
	ReturnURL           string `json:"return_url"`
	Channels            string `json:"channels"`
	Metadata            string `json:"metadata"`
}

// PaymentResponse is the payment-creation response. Raw carries the
// unmodified provider payload for persistence and error passthrough.
type PaymentResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		PaymentURL   string `json:"payment_url"`
		PaymentToken string `json:"payment_token"`
	} `json:"data"`
	Raw json.RawMessage `json:"-"`
}

// Created reports whether the provider accepted the payment creation.
func (r *PaymentResponse) Created() bool {
	return r.Code == CodeCreated
}

// CheckResponse is the payment status-check response.
type CheckResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Status        string `json:"status"`
		PaymentMethod string `json:"payment_method"`
		OperatorID    string `json:"operator_id"`
		Amount        string `json:"amount"`
		Currency      string `json:"currency"`
	} `json:"data"`
	Raw json.RawMessage `json:"-"`
}

// Client talks to the CinetPay checkout API
type Client struct {
	apiKey string
	siteID string
	client *httpclient.Client
}

// NewClient creates a new CinetPay API client
func NewClient(baseURL, apiKey, siteID string) *Client {
	return &Client{
		apiKey: apiKey,
		siteID: siteID,
		client: httpclient.NewClient(baseURL, 10*time.Second),
	}
}

// CreatePayment calls the payment-creation endpoint. A transport or
// decoding failure returns an error; a provider rejection returns the
// decoded response with its non-success code so the caller can pass the
// raw payload through.
func (c *Client) CreatePayment(ctx context.Context, req *PaymentRequest) (*PaymentResponse, error) {
	req.APIKey = c.apiKey
	req.SiteID = c.siteID

	respBody, err := c.post(ctx, c.client.BaseURL+"/payment", req)
	if err != nil {
		return nil, err
	}

	var response PaymentResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse payment creation response: %w", err)
	}
	response.Raw = respBody

	return &response, nil
}

// CheckPayment calls the status-check endpoint for a transaction id.
func (c *Client) CheckPayment(ctx context.Context, transactionID string) (*CheckResponse, error) {
	payload := map[string]string{
		"apikey":         c.apiKey,
		"site_id":        c.siteID,
		"transaction_id": transactionID,
	}

	respBody, err := c.post(ctx, c.client.BaseURL+"/payment/check", payload)
	if err != nil {
		return nil, err
	}

	var response CheckResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse payment check response: %w", err)
	}
	response.Raw = respBody

	return &response, nil
}

func (c *Client) post(ctx context.Context, url string, payload interface{}) ([]byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal provider request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send provider request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response body: %w", err)
	}

	return respBody, nil
}
