package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"donation-gateway/internal/core/domain"
)

// In-memory repository implementations for integration tests. They mirror the
// postgres repos' semantics (nil,nil on miss; Resolve only from CREATED).

type inMemoryDonationOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.DonationOrder // keyed by gateway order id
}

func newInMemoryDonationOrderRepo() *inMemoryDonationOrderRepo {
	return &inMemoryDonationOrderRepo{orders: make(map[string]*domain.DonationOrder)}
}

func (r *inMemoryDonationOrderRepo) Create(_ context.Context, order *domain.DonationOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *order
	r.orders[order.OrderID] = &cp
	return nil
}

func (r *inMemoryDonationOrderRepo) GetByOrderID(_ context.Context, orderID string) (*domain.DonationOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, nil
	}
	cp := *order
	return &cp, nil
}

func (r *inMemoryDonationOrderRepo) Resolve(_ context.Context, orderID string, status domain.DonationStatus, paymentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok || order.Status != domain.DonationStatusCreated {
		return fmt.Errorf("donation order not found or already resolved: %s", orderID)
	}
	order.Status = status
	if paymentID != "" {
		order.PaymentID = &paymentID
	}
	now := time.Now().UTC()
	order.ResolvedAt = &now
	return nil
}

type inMemoryAuditRepo struct {
	mu      sync.Mutex
	entries []*domain.AuditLog
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Create(_ context.Context, entry *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *inMemoryAuditRepo) countByAction(action domain.AuditAction) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Action == action {
			n++
		}
	}
	return n
}
