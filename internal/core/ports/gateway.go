package ports

import "context"

// GatewayOrderRequest is the order-creation request toward the gateway.
// Receipt is the idempotency key; whether the gateway deduplicates on it is
// not part of its published contract, so callers must not rely on it.
type GatewayOrderRequest struct {
	AmountMinor int64
	Currency    string
	Receipt     string
}

// GatewayOrder mirrors the gateway's order record. The field set matches the
// Razorpay Orders API response; the legacy client receives it unchanged.
type GatewayOrder struct {
	ID         string `json:"id"`
	Entity     string `json:"entity,omitempty"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amount_paid"`
	AmountDue  int64  `json:"amount_due"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt,omitempty"`
	Status     string `json:"status,omitempty"`
	Attempts   int    `json:"attempts"`
	CreatedAt  int64  `json:"created_at"`
}

// PaymentGatewayClient is the narrow port over the concrete gateway SDK.
// One method, so tests can swap in a fake without touching core logic.
type PaymentGatewayClient interface {
	CreateOrder(ctx context.Context, req GatewayOrderRequest) (*GatewayOrder, error)
}
