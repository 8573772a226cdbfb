package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DonationStatus represents the lifecycle state of a donation flow.
// The gateway owns the order itself; this is the local view of where the
// flow got to: CREATED after the order is issued, then exactly one of the
// terminal states once a confirmation arrives.
type DonationStatus string

const (
	DonationStatusCreated           DonationStatus = "CREATED"
	DonationStatusVerified          DonationStatus = "VERIFIED"
	DonationStatusRejected          DonationStatus = "REJECTED"
	DonationStatusVerificationError DonationStatus = "VERIFICATION_ERROR"
)

// DonationOrder is the local record of a donation flow. The authoritative
// order lives gateway-side; OrderID references it and is never mutated here.
type DonationOrder struct {
	ID          uuid.UUID      `json:"id"`
	OrderID     string         `json:"order_id"` // Gateway order id (opaque)
	Receipt     string         `json:"receipt"`  // Idempotency key sent to the gateway
	AmountMinor int64          `json:"amount_minor"`
	Currency    string         `json:"currency"`
	Status      DonationStatus `json:"status"`
	PaymentID   *string        `json:"payment_id,omitempty"` // Set once a confirmation names it
	ClientIP    string         `json:"client_ip,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	ResolvedAt  *time.Time     `json:"resolved_at,omitempty"`
}

// IsTerminal returns true once a confirmation outcome has been recorded.
func (d *DonationOrder) IsTerminal() bool {
	return d.Status == DonationStatusVerified ||
		d.Status == DonationStatusRejected ||
		d.Status == DonationStatusVerificationError
}

// MinorUnits converts a major-unit amount (rupees) to minor units (paise),
// rounded to the nearest integer. Gateways operate on integers to avoid
// floating-point rounding.
func MinorUnits(amountMajor float64) int64 {
	return int64(math.Round(amountMajor * 100))
}
