package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"donation-gateway/internal/core/ports"
	"donation-gateway/internal/core/ports/mocks"
	"donation-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupTestRouter(orderSvc ports.OrderService, verificationSvc ports.VerificationService) *gin.Engine {
	return SetupRouter(RouterDeps{
		OrderSvc:        orderSvc,
		VerificationSvc: verificationSvc,
		Logger:          zerolog.Nop(),
	})
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrder := mocks.NewMockOrderService(ctrl)
	mockOrder.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req ports.CreateOrderRequest) (*ports.GatewayOrder, error) {
			assert.NotNil(t, req.AmountMajor)
			assert.Equal(t, 250.0, *req.AmountMajor)
			return &ports.GatewayOrder{
				ID:        "order_Nxq7c2FJc1p8rt",
				Entity:    "order",
				Amount:    25000,
				AmountDue: 25000,
				Currency:  "INR",
				Receipt:   "donation_rcpt_1756300000000",
				Status:    "created",
			}, nil
		},
	)

	r := setupTestRouter(mockOrder, mocks.NewMockVerificationService(ctrl))
	w := postJSON(r, "/create-order", `{"amount": 250}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": "order_Nxq7c2FJc1p8rt",
		"entity": "order",
		"amount": 25000,
		"amount_paid": 0,
		"amount_due": 25000,
		"currency": "INR",
		"receipt": "donation_rcpt_1756300000000",
		"status": "created",
		"attempts": 0,
		"created_at": 0
	}`, w.Body.String())
}

func TestCreateOrder_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrder := mocks.NewMockOrderService(ctrl)
	mockOrder.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInvalidAmount())

	r := setupTestRouter(mockOrder, mocks.NewMockVerificationService(ctrl))
	w := postJSON(r, "/create-order", `{"amount": -5}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Invalid amount. Provide a positive number (rupees)."}`, w.Body.String())
}

func TestCreateOrder_NonNumericAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Service is never reached: binding fails first.
	mockOrder := mocks.NewMockOrderService(ctrl)

	r := setupTestRouter(mockOrder, mocks.NewMockVerificationService(ctrl))
	w := postJSON(r, "/create-order", `{"amount": "lots"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Invalid amount. Provide a positive number (rupees)."}`, w.Body.String())
}

func TestCreateOrder_GatewayFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrder := mocks.NewMockOrderService(ctrl)
	mockOrder.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrOrderCreationFailed(assert.AnError))

	r := setupTestRouter(mockOrder, mocks.NewMockVerificationService(ctrl))
	w := postJSON(r, "/create-order", `{"amount": 100}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "order_creation_failed", "details": "assert.AnError general error for testing"}`, w.Body.String())
}

func TestVerifyPayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVerify := mocks.NewMockVerificationService(ctrl)
	mockVerify.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req ports.ConfirmationRequest) error {
			assert.Equal(t, "order_abc", req.OrderID)
			assert.Equal(t, "pay_def", req.PaymentID)
			assert.Equal(t, "deadbeef", req.Signature)
			return nil
		},
	)

	r := setupTestRouter(mocks.NewMockOrderService(ctrl), mockVerify)
	w := postJSON(r, "/verify-payment", `{
		"razorpay_order_id": "order_abc",
		"razorpay_payment_id": "pay_def",
		"razorpay_signature": "deadbeef"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true, "message": "Payment verified successfully"}`, w.Body.String())
}

func TestVerifyPayment_MissingParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVerify := mocks.NewMockVerificationService(ctrl)
	mockVerify.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).
		Return(apperror.ErrMissingParameters())

	r := setupTestRouter(mocks.NewMockOrderService(ctrl), mockVerify)
	w := postJSON(r, "/verify-payment", `{"razorpay_order_id": "order_abc"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success": false, "message": "Missing parameters"}`, w.Body.String())
}

func TestVerifyPayment_InvalidSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVerify := mocks.NewMockVerificationService(ctrl)
	mockVerify.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).
		Return(apperror.ErrInvalidSignature())

	r := setupTestRouter(mocks.NewMockOrderService(ctrl), mockVerify)
	w := postJSON(r, "/verify-payment", `{
		"razorpay_order_id": "order_abc",
		"razorpay_payment_id": "pay_def",
		"razorpay_signature": "0000000000000000000000000000000000000000000000000000000000000000"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success": false, "message": "Invalid signature"}`, w.Body.String())
}

func TestVerifyPayment_InternalFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVerify := mocks.NewMockVerificationService(ctrl)
	mockVerify.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).
		Return(apperror.ErrVerificationFailed(assert.AnError))

	r := setupTestRouter(mocks.NewMockOrderService(ctrl), mockVerify)
	w := postJSON(r, "/verify-payment", `{
		"razorpay_order_id": "order_abc",
		"razorpay_payment_id": "pay_def",
		"razorpay_signature": "deadbeef"
	}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success": false, "message": "verification_failed"}`, w.Body.String())
}

func TestVerifyPayment_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Service is never reached: binding fails first.
	r := setupTestRouter(mocks.NewMockOrderService(ctrl), mocks.NewMockVerificationService(ctrl))
	w := postJSON(r, "/verify-payment", `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success": false, "message": "Missing parameters"}`, w.Body.String())
}

func TestHealthCheck_AllHealthy(t *testing.T) {
	r := setupTestRouter(nil, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "healthy", "dependencies": {}}`, w.Body.String())
}

func TestRoot_Liveness(t *testing.T) {
	r := setupTestRouter(nil, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
