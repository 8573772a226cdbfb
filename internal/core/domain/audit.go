package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited event.
type AuditAction string

const (
	AuditActionOrderCreated      AuditAction = "ORDER_CREATED"
	AuditActionPaymentVerified   AuditAction = "PAYMENT_VERIFIED"
	AuditActionSignatureRejected AuditAction = "SIGNATURE_REJECTED"
	AuditActionVerificationError AuditAction = "VERIFICATION_ERROR"
)

// AuditLog records a single audited event. Signature rejections in particular
// are potential integrity violations and always land here.
type AuditLog struct {
	ID        uuid.UUID   `json:"id"`
	OrderID   string      `json:"order_id,omitempty"` // Gateway order id, when known
	Action    AuditAction `json:"action"`
	Details   string      `json:"details,omitempty"` // JSON string
	IPAddress string      `json:"ip_address"`
	CreatedAt time.Time   `json:"created_at"`
}
