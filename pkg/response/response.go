package response

import (
	"errors"
	"net/http"

	"donation-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// The two legacy endpoints answer with different error envelopes, and the web
// client matches on them byte for byte. This package owns both shapes so the
// handlers cannot drift.

// OrderErrorBody is the /create-order error envelope.
type OrderErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// VerifyBody is the /verify-payment envelope, success and failure alike.
type VerifyBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OK sends a 200 response with the payload as-is (gateway passthrough).
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error sends the order-endpoint error shape. Wrapped internal errors surface
// as the details string on 5xx responses only; 4xx responses stay terse.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, OrderErrorBody{Error: "Internal server error"})
		return
	}

	body := OrderErrorBody{Error: appErr.Message}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		body.Details = detailString(appErr)
	}
	c.JSON(appErr.HTTPStatus, body)
}

// Verified sends the verify-payment success envelope.
func Verified(c *gin.Context) {
	c.JSON(http.StatusOK, VerifyBody{Success: true, Message: "Payment verified successfully"})
}

// VerifyError sends the verify-payment failure envelope. Only the taxonomy
// message leaks out; never the expected signature or internal detail.
func VerifyError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, VerifyBody{Success: false, Message: "verification_failed"})
		return
	}
	c.JSON(appErr.HTTPStatus, VerifyBody{Success: false, Message: appErr.Message})
}

func detailString(appErr *apperror.AppError) string {
	if appErr.Err != nil {
		return appErr.Err.Error()
	}
	return "unknown"
}
