package service

import (
	"context"
	"crypto/hmac"
	"encoding/json"
	"errors"
	"time"

	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"
	"donation-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// confirmationTTL bounds the Redis fast path for already-verified checkouts.
const confirmationTTL = 24 * time.Hour

// VerificationServiceImpl implements ports.VerificationService.
type VerificationServiceImpl struct {
	sigSvc    ports.SignatureService
	secretKey string
	orderRepo ports.DonationOrderRepository
	cache     ports.ConfirmationCache
	auditSvc  ports.AuditService
	log       zerolog.Logger
}

// NewVerificationService creates a new VerificationServiceImpl. secretKey is
// the gateway key secret, injected explicitly so tests can run with fakes.
// orderRepo, cache and auditSvc may be nil (the respective collaborator is
// disabled); verification itself never depends on them.
func NewVerificationService(
	sigSvc ports.SignatureService,
	secretKey string,
	orderRepo ports.DonationOrderRepository,
	cache ports.ConfirmationCache,
	auditSvc ports.AuditService,
	log zerolog.Logger,
) *VerificationServiceImpl {
	return &VerificationServiceImpl{
		sigSvc:    sigSvc,
		secretKey: secretKey,
		orderRepo: orderRepo,
		cache:     cache,
		auditSvc:  auditSvc,
		log:       log,
	}
}

// VerifyPayment recomputes the expected signature over the confirmation
// payload and compares it in constant time. Outcomes:
//   - any field missing        -> MissingParameters (before any hashing)
//   - secret not configured    -> VerificationFailed (server fault)
//   - signature mismatch       -> InvalidSignature (attack or client bug)
//   - match                    -> nil
func (s *VerificationServiceImpl) VerifyPayment(ctx context.Context, req ports.ConfirmationRequest) error {
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return apperror.ErrMissingParameters()
	}

	if s.secretKey == "" {
		err := errors.New("gateway key secret not configured")
		s.log.Error().Str("order_id", req.OrderID).Msg("refusing to verify: key secret absent")
		s.recordOutcome(ctx, req, domain.DonationStatusVerificationError, domain.AuditActionVerificationError)
		return apperror.ErrVerificationFailed(err)
	}

	payload := s.sigSvc.BuildConfirmationPayload(req.OrderID, req.PaymentID)

	// Fast path: a checkout we already verified. The cached value is the
	// accepted signature, still compared in constant time.
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, payload)
		if err != nil {
			s.log.Warn().Err(err).Msg("confirmation cache read failed, recomputing")
		} else if cached != nil && hmac.Equal(cached, []byte(req.Signature)) {
			return nil
		}
	}

	if !s.sigSvc.Verify(s.secretKey, payload, req.Signature) {
		s.log.Warn().
			Str("order_id", req.OrderID).
			Str("payment_id", req.PaymentID).
			Str("ip", req.ClientIP).
			Msg("confirmation signature mismatch")
		s.recordOutcome(ctx, req, domain.DonationStatusRejected, domain.AuditActionSignatureRejected)
		return apperror.ErrInvalidSignature()
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, payload, []byte(req.Signature), confirmationTTL); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache verified confirmation")
		}
	}

	s.recordOutcome(ctx, req, domain.DonationStatusVerified, domain.AuditActionPaymentVerified)

	s.log.Info().
		Str("order_id", req.OrderID).
		Str("payment_id", req.PaymentID).
		Msg("payment verified")

	return nil
}

// recordOutcome updates the persisted flow state and writes the audit trail.
// Both are collaborators, not the contract: failures are logged, never
// surfaced to the donor.
func (s *VerificationServiceImpl) recordOutcome(
	ctx context.Context,
	req ports.ConfirmationRequest,
	status domain.DonationStatus,
	action domain.AuditAction,
) {
	if s.orderRepo != nil {
		if err := s.orderRepo.Resolve(ctx, req.OrderID, status, req.PaymentID); err != nil {
			s.log.Warn().Err(err).Str("order_id", req.OrderID).Msg("failed to record confirmation outcome")
		}
	}

	if s.auditSvc != nil {
		details, _ := json.Marshal(map[string]interface{}{
			"payment_id": req.PaymentID,
			"status":     string(status),
		})
		s.auditSvc.Log(ctx, &domain.AuditLog{
			ID:        uuid.New(),
			OrderID:   req.OrderID,
			Action:    action,
			Details:   string(details),
			IPAddress: req.ClientIP,
			CreatedAt: time.Now().UTC(),
		})
	}
}
