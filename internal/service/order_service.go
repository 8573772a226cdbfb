package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"
	"donation-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// donationCurrency is fixed: the gateway account and the web client both
// operate in INR.
const donationCurrency = "INR"

// OrderServiceImpl implements ports.OrderService.
type OrderServiceImpl struct {
	gateway   ports.PaymentGatewayClient
	orderRepo ports.DonationOrderRepository
	auditSvc  ports.AuditService
	timeout   time.Duration
	log       zerolog.Logger
}

// NewOrderService creates a new OrderServiceImpl. timeout bounds the outbound
// gateway call; zero means the caller's context deadline applies as-is.
// orderRepo and auditSvc may be nil (persistence disabled).
func NewOrderService(
	gateway ports.PaymentGatewayClient,
	orderRepo ports.DonationOrderRepository,
	auditSvc ports.AuditService,
	timeout time.Duration,
	log zerolog.Logger,
) *OrderServiceImpl {
	return &OrderServiceImpl{
		gateway:   gateway,
		orderRepo: orderRepo,
		auditSvc:  auditSvc,
		timeout:   timeout,
		log:       log,
	}
}

// CreateOrder validates the donation amount, converts it to minor units, and
// requests an order from the gateway. One outbound call, never retried: the
// client restarts the flow if it wants another attempt.
func (s *OrderServiceImpl) CreateOrder(ctx context.Context, req ports.CreateOrderRequest) (*ports.GatewayOrder, error) {
	if req.AmountMajor == nil || *req.AmountMajor <= 0 || math.IsNaN(*req.AmountMajor) || math.IsInf(*req.AmountMajor, 0) {
		return nil, apperror.ErrInvalidAmount()
	}

	amountMinor := domain.MinorUnits(*req.AmountMajor)

	// Timestamp-derived receipt id, the idempotency key toward the gateway.
	// Rapid duplicate calls get distinct receipts and therefore distinct orders.
	receipt := fmt.Sprintf("donation_rcpt_%d", time.Now().UnixMilli())

	gwCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		gwCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	order, err := s.gateway.CreateOrder(gwCtx, ports.GatewayOrderRequest{
		AmountMinor: amountMinor,
		Currency:    donationCurrency,
		Receipt:     receipt,
	})
	if err != nil {
		s.log.Error().Err(err).Int64("amount_minor", amountMinor).Msg("gateway order creation failed")
		return nil, apperror.ErrOrderCreationFailed(err)
	}
	if order == nil || order.ID == "" {
		return nil, apperror.ErrOrderCreationFailed(errors.New("gateway returned order without id"))
	}

	// Record the local view of the flow. The gateway order already exists, so
	// a persistence failure must not strand it: log and move on.
	if s.orderRepo != nil {
		rec := &domain.DonationOrder{
			ID:          uuid.New(),
			OrderID:     order.ID,
			Receipt:     receipt,
			AmountMinor: order.Amount,
			Currency:    order.Currency,
			Status:      domain.DonationStatusCreated,
			ClientIP:    req.ClientIP,
			CreatedAt:   time.Now().UTC(),
		}
		if err := s.orderRepo.Create(ctx, rec); err != nil {
			s.log.Warn().Err(err).Str("order_id", order.ID).Msg("failed to persist donation order")
		}
	}

	if s.auditSvc != nil {
		details, _ := json.Marshal(map[string]interface{}{
			"receipt":      receipt,
			"amount_minor": order.Amount,
			"currency":     order.Currency,
		})
		s.auditSvc.Log(ctx, &domain.AuditLog{
			ID:        uuid.New(),
			OrderID:   order.ID,
			Action:    domain.AuditActionOrderCreated,
			Details:   string(details),
			IPAddress: req.ClientIP,
			CreatedAt: time.Now().UTC(),
		})
	}

	s.log.Info().
		Str("order_id", order.ID).
		Int64("amount_minor", order.Amount).
		Str("currency", order.Currency).
		Msg("donation order created")

	return order, nil
}
