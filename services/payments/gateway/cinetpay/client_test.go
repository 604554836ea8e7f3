package cinetpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreatePayment(t *testing.T) {
	tests := []struct {
		name         string
		responseBody map[string]interface{}
		expectCode   string
		expectURL    string
	}{
		{
			name: "payment created",
			responseBody: map[string]interface{}{
				"code":    "201",
				"message": "CREATED",
				"data": map[string]interface{}{
					"payment_url":   "https://checkout.cinetpay.com/payment/abc123",
					"payment_token": "abc123",
				},
			},
			expectCode: "201",
			expectURL:  "https://checkout.cinetpay.com/payment/abc123",
		},
		{
			name: "provider rejection is returned, not an error",
			responseBody: map[string]interface{}{
				"code":    "608",
				"message": "MINIMUM_REQUIRED_FIELDS",
			},
			expectCode: "608",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotRequest PaymentRequest
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/payment", r.URL.Path)
				require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
				json.NewEncoder(w).Encode(tt.responseBody)
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-api-key", "test-site-id")
			resp, err := client.CreatePayment(context.Background(), &PaymentRequest{
				TransactionID: "GM-1700000000000-ABC123XYZ",
				Amount:        10000,
				Currency:      "XOF",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.expectCode, resp.Code)
			assert.Equal(t, tt.expectURL, resp.Data.PaymentURL)
			assert.NotEmpty(t, resp.Raw)

			// Credentials are injected by the client, never by the caller
			assert.Equal(t, "test-api-key", gotRequest.APIKey)
			assert.Equal(t, "test-site-id", gotRequest.SiteID)
		})
	}
}

func TestClient_CreatePayment_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "site")
	_, err := client.CreatePayment(context.Background(), &PaymentRequest{})
	assert.Error(t, err)
}

func TestClient_CheckPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment/check", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "GM-1700000000000-ABC123XYZ", payload["transaction_id"])
		assert.Equal(t, "key", payload["apikey"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"code":    "00",
			"message": "SUCCES",
			"data": map[string]interface{}{
				"status":         "ACCEPTED",
				"payment_method": "OM",
				"amount":         "10000",
				"currency":       "XOF",
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "site")
	resp, err := client.CheckPayment(context.Background(), "GM-1700000000000-ABC123XYZ")

	require.NoError(t, err)
	assert.Equal(t, CodeSuccess, resp.Code)
	assert.Equal(t, StatusAccepted, resp.Data.Status)
	assert.Equal(t, "OM", resp.Data.PaymentMethod)
}

func TestPaymentResponse_Created(t *testing.T) {
	assert.True(t, (&PaymentResponse{Code: CodeCreated}).Created())
	assert.False(t, (&PaymentResponse{Code: "608"}).Created())
	assert.False(t, (&PaymentResponse{}).Created())
}
