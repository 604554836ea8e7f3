package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomonto/payments/internal/pkg/models"
	"github.com/gomonto/payments/services/payments"
	"github.com/gomonto/payments/services/payments/gateway/cinetpay"
	"github.com/gomonto/payments/services/payments/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		CinetPay: models.CinetPayConfig{
			APIKey: "test-api-key",
			SiteID: "123456",
		},
		Payment: models.PaymentConfig{
			ReturnURL:       "https://gomonto.com/payment/return",
			NotifyURL:       "https://api.gomonto.com/payments/notify",
			DefaultCurrency: "XOF",
		},
	}
}

func createdResponse() *cinetpay.PaymentResponse {
	resp := &cinetpay.PaymentResponse{
		Code:    cinetpay.CodeCreated,
		Message: "CREATED",
	}
	resp.Data.PaymentURL = "https://checkout.cinetpay.com/pay/abc"
	resp.Data.PaymentToken = "tok-abc"
	return resp
}

func TestInitiatePayment_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	cfg := testConfig()
	cfg.CinetPay.APIKey = ""
	uc := NewPaymentUC(mockRepo, mockGW, cfg)

	resp, err := uc.InitiatePayment(context.Background(), &models.InitiatePaymentRequest{
		Amount:        5000,
		Description:   "Deposit",
		CustomerName:  "Awa Diop",
		CustomerPhone: "+221771234567",
	}, "")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, payments.ErrProviderNotConfigured)
}

func TestInitiatePayment_MissingPhoneNeverCallsProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	mockGW.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Times(0)

	uc := NewPaymentUC(mockRepo, mockGW, testConfig())

	resp, err := uc.InitiatePayment(context.Background(), &models.InitiatePaymentRequest{
		Amount:       5000,
		Description:  "Deposit",
		CustomerName: "Awa Diop",
	}, "")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, payments.ErrMissingPhone)
}

func TestInitiatePayment_PhoneFromReservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		GetReservation(gomock.Any(), "res-42").
		Return(&models.Reservation{ID: "res-42", RenterPhone: "+2250701020304"}, nil)

	var captured *cinetpay.PaymentRequest
	mockGW.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *cinetpay.PaymentRequest) (*cinetpay.PaymentResponse, error) {
			captured = req
			return createdResponse(), nil
		})
	mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishPaymentEvent(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := uc.InitiatePayment(context.Background(), &models.InitiatePaymentRequest{
		Amount:        10000,
		Description:   "Reservation deposit",
		CustomerName:  "Awa Diop",
		ReservationID: "res-42",
	}, "user-1")

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "+2250701020304", captured.CustomerPhoneNumber)
	assert.Equal(t, "tok-abc", resp.PaymentToken)
}

func TestInitiatePayment_ReservationLookupFailureStillRequiresPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		GetReservation(gomock.Any(), "res-99").
		Return(nil, errors.New("connection refused"))
	mockGW.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Times(0)

	_, err := uc.InitiatePayment(context.Background(), &models.InitiatePaymentRequest{
		Amount:        10000,
		Description:   "Reservation deposit",
		CustomerName:  "Awa Diop",
		ReservationID: "res-99",
	}, "")

	assert.ErrorIs(t, err, payments.ErrMissingPhone)
}

func TestInitiatePayment_LocalMarketGetsAllChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(mockRepo, mockGW, testConfig())

	var captured *cinetpay.PaymentRequest
	mockGW.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *cinetpay.PaymentRequest) (*cinetpay.PaymentResponse, error) {
			captured = req
			return createdResponse(), nil
		})
	mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishPaymentEvent(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.InitiatePayment(context.Background(), &models.InitiatePaymentRequest{
		Amount:        2500.6,
		Description:   "Credits",
		CustomerName:  "Moussa Ba",
		CustomerPhone: "+221 77 123 45 67",
	}, "")

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "ALL", captured.Channels)
	assert.Equal(t, "SN", captured.CustomerCountry)
	assert.Equal(t, "Dakar", captured.CustomerCity)
	assert.Equal(t, 2501, captured.Amount)
	assert.Equal(t, "XOF", captured.Currency)
	assert.Equal(t, "client@gomonto.com", captured.CustomerEmail)
	assert.Equal(t, "Moussa", captured.CustomerName)
	assert.Equal(t, "Ba", captured.CustomerSurname)
}

func TestInitiatePayment_InternationalCardBilledToHomeMarket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(mockRepo, mockGW, testConfig())

	var captured *cinetpay.PaymentRequest
	mockGW.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *cinetpay.PaymentRequest) (*cinetpay.PaymentResponse, error) {
			captured = req
			return createdResponse(), nil
		})
	mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishPaymentEvent(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.InitiatePayment(context.Background(), &models.InitiatePaymentRequest{
		Amount:        15000,
		Description:   "Deposit",
		CustomerName:  "Marie Tremblay",
		CustomerPhone: "+14165551234",
	}, "")

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "CREDIT_CARD", captured.Channels)
	assert.Equal(t, "CI", captured.CustomerCountry)
	assert.Equal(t, "Abidjan", captured.CustomerCity)
	assert.Equal(t, "Abidjan", captured.CustomerState)
}

func TestInitiatePayment_EmailValidation(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		wantEmail string
	}{
		{name: "valid email forwarded", email: "awa.diop@example.com", wantEmail: "awa.diop@example.com"},
		{name: "malformed email replaced", email: "not-an-email", wantEmail: placeholderEmail},
		{name: "blank email replaced", email: "   ", wantEmail: placeholderEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockPaymentRepo(ctrl)
			mockGW := mocks.NewMockPaymentGW(ctrl)
			uc := NewPaymentUC(mockRepo, mockGW, testConfig())

			var captured *cinetpay.PaymentRequest
			mockGW.EXPECT().
				CreatePayment(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req *cinetpay.PaymentRequest) (*cinetpay.PaymentResponse, error) {
					captured = req
					return createdResponse(), nil
				})
			mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
			mockGW.EXPECT().PublishPaymentEvent(gomock.Any(), gomock.Any()).Return(nil)

			_, err := uc.InitiatePayment(context.Background(), &models.InitiatePaymentRequest{
				Amount:        5000,
				Description:   "Deposit",
				CustomerName:  "Awa Diop",
				CustomerPhone: "+221771234567",
				CustomerEmail: tt.email,
			}, "")

			require.NoError(t, err)
			require.NotNil(t, captured)
			assert.Equal(t, tt.wantEmail, captured.CustomerEmail)
		})
	}
}

func TestInitiatePayment_ProviderRejectionPassedThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(mockRepo, mockGW, testConfig())

	rejected := &cinetpay.PaymentResponse{
		Code:    "608",
		Message: "MINIMUM_REQUIRED_FIELDS",
		Raw:     []byte(`{"code":"608","message":"MINIMUM_REQUIRED_FIELDS"}`),
	}
	mockGW.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(rejected, nil)
	mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Times(0)

	resp, err := uc.InitiatePayment(context.Background(), &models.InitiatePaymentRequest{
		Amount:        5000,
		Description:   "Deposit",
		CustomerName:  "Awa Diop",
		CustomerPhone: "+221771234567",
	}, "")

	assert.Nil(t, resp)
	var rejection *payments.ProviderRejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "MINIMUM_REQUIRED_FIELDS", rejection.Message)
	assert.JSONEq(t, string(rejected.Raw), string(rejection.Raw))
}

func TestInitiatePayment_InsertFailureDoesNotFailResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(mockRepo, mockGW, testConfig())

	mockGW.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(createdResponse(), nil)
	mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
	mockGW.EXPECT().PublishPaymentEvent(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := uc.InitiatePayment(context.Background(), &models.InitiatePaymentRequest{
		Amount:        5000,
		Description:   "Deposit",
		CustomerName:  "Awa Diop",
		CustomerPhone: "+221771234567",
	}, "")

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.cinetpay.com/pay/abc", resp.PaymentURL)
	assert.NotEmpty(t, resp.TransactionID)
}

func TestGenerateTransactionID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^GM-\d{13}-[0-9A-Z]{9}$`)
	for i := 0; i < 100; i++ {
		id := generateTransactionID()
		assert.Regexp(t, pattern, id)
	}
}

func TestGenerateTransactionID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := generateTransactionID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate transaction id %s", id)
		seen[id] = struct{}{}
	}
}
