package ports

import (
	"context"
	"time"

	"donation-gateway/internal/core/domain"
)

// DonationOrderRepository persists the local view of donation flows.
// The verification path treats it as best-effort: a missing row never fails
// a confirmation.
type DonationOrderRepository interface {
	Create(ctx context.Context, order *domain.DonationOrder) error
	GetByOrderID(ctx context.Context, orderID string) (*domain.DonationOrder, error)
	// Resolve records the terminal outcome of a flow. paymentID may be empty
	// when the confirmation never named one.
	Resolve(ctx context.Context, orderID string, status domain.DonationStatus, paymentID string) error
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}

// ConfirmationCache is the Redis-layer fast path for already-verified
// confirmations. Get returns the cached outcome JSON or nil.
type ConfirmationCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
