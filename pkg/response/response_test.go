package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"donation-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	fn(c)
	return w
}

func TestOK_Passthrough(t *testing.T) {
	w := record(func(c *gin.Context) {
		OK(c, map[string]interface{}{"id": "order_abc", "amount": 10000, "currency": "INR"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "order_abc", body["id"])
	assert.Equal(t, float64(10000), body["amount"])
}

func TestError_InvalidAmountShape(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, apperror.ErrInvalidAmount())
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid amount. Provide a positive number (rupees)."}`, w.Body.String())
}

func TestError_OrderCreationFailedIncludesDetails(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, apperror.ErrOrderCreationFailed(errors.New("authentication failed")))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"order_creation_failed","details":"authentication failed"}`, w.Body.String())
}

func TestError_UnknownDetailFallsBack(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, apperror.ErrOrderCreationFailed(nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"order_creation_failed","details":"unknown"}`, w.Body.String())
}

func TestError_NonAppError(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, errors.New("boom"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestVerified_Shape(t *testing.T) {
	w := record(Verified)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Payment verified successfully"}`, w.Body.String())
}

func TestVerifyError_Shapes(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"missing parameters", apperror.ErrMissingParameters(), http.StatusBadRequest,
			`{"success":false,"message":"Missing parameters"}`},
		{"invalid signature", apperror.ErrInvalidSignature(), http.StatusBadRequest,
			`{"success":false,"message":"Invalid signature"}`},
		{"internal fault", apperror.ErrVerificationFailed(errors.New("no secret")), http.StatusInternalServerError,
			`{"success":false,"message":"verification_failed"}`},
		{"non-app error", errors.New("boom"), http.StatusInternalServerError,
			`{"success":false,"message":"verification_failed"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := record(func(c *gin.Context) { VerifyError(c, tc.err) })
			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}
