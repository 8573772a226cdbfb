package ports

import (
	"context"

	"donation-gateway/internal/core/domain"
)

// SignatureService handles HMAC-SHA256 signing and verification of
// confirmation payloads.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	// Verify compares in constant time; a plain string compare would leak
	// timing information about the expected signature.
	Verify(secretKey string, payload string, signature string) bool
	BuildConfirmationPayload(orderID, paymentID string) string
}

// OrderService issues donation orders against the payment gateway.
type OrderService interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*GatewayOrder, error)
}

// CreateOrderRequest holds validated input for order creation.
type CreateOrderRequest struct {
	// AmountMajor is the donation amount in major currency units (rupees).
	// Nil means the client omitted the field entirely.
	AmountMajor *float64
	ClientIP    string
}

// VerificationService checks the confirmation payload a client hands back
// after a completed gateway checkout.
type VerificationService interface {
	VerifyPayment(ctx context.Context, req ConfirmationRequest) error
}

// ConfirmationRequest is the three-identifier bundle produced by the hosted
// checkout. Validated once, never stored as-is.
type ConfirmationRequest struct {
	OrderID   string
	PaymentID string
	Signature string
	ClientIP  string
}

// AuditService records security-relevant events (fire-and-forget).
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
