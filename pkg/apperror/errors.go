package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
// Message is the client-facing string; Err carries internal detail.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Order Issuing (ORD) ----

// ErrInvalidAmount rejects a missing, non-numeric, or non-positive donation amount.
// The message is the exact string the legacy web client displays.
func ErrInvalidAmount() *AppError {
	return New("ORD_001", "Invalid amount. Provide a positive number (rupees).", http.StatusBadRequest)
}

// ErrOrderCreationFailed signals an upstream gateway error or a malformed
// gateway response. Never retried here; the caller decides.
func ErrOrderCreationFailed(err error) *AppError {
	return Wrap("ORD_002", "order_creation_failed", http.StatusInternalServerError, err)
}

// ---- Payment Verification (VER) ----

// ErrMissingParameters rejects an incomplete confirmation payload.
func ErrMissingParameters() *AppError {
	return New("VER_001", "Missing parameters", http.StatusBadRequest)
}

// ErrInvalidSignature marks a deliberate signature mismatch: attack or client
// bug, never server misconfiguration.
func ErrInvalidSignature() *AppError {
	return New("VER_002", "Invalid signature", http.StatusBadRequest)
}

// ErrVerificationFailed marks an internal fault during verification (absent
// secret, hashing failure). Kept distinct from ErrInvalidSignature so monitors
// can tell the two apart.
func ErrVerificationFailed(err error) *AppError {
	return Wrap("VER_003", "verification_failed", http.StatusInternalServerError, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
