package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"donation-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingAuditRepo records entries and signals arrival; Log is async.
type capturingAuditRepo struct {
	mu      sync.Mutex
	entries []*domain.AuditLog
	arrived chan struct{}
	err     error
}

func newCapturingAuditRepo() *capturingAuditRepo {
	return &capturingAuditRepo{arrived: make(chan struct{}, 8)}
}

func (r *capturingAuditRepo) Create(_ context.Context, entry *domain.AuditLog) error {
	r.mu.Lock()
	r.entries = append(r.entries, entry)
	r.mu.Unlock()
	r.arrived <- struct{}{}
	return r.err
}

func (r *capturingAuditRepo) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.arrived:
	case <-time.After(2 * time.Second):
		t.Fatal("audit entry was never persisted")
	}
}

func TestAuditService_Log_PersistsAsync(t *testing.T) {
	repo := newCapturingAuditRepo()
	svc := NewAuditService(repo, zerolog.Nop())

	entry := &domain.AuditLog{
		ID:        uuid.New(),
		OrderID:   "order_abc",
		Action:    domain.AuditActionSignatureRejected,
		IPAddress: "1.2.3.4",
		CreatedAt: time.Now(),
	}
	svc.Log(context.Background(), entry)

	repo.wait(t)
	repo.mu.Lock()
	defer repo.mu.Unlock()
	require.Len(t, repo.entries, 1)
	assert.Equal(t, domain.AuditActionSignatureRejected, repo.entries[0].Action)
	assert.Equal(t, "order_abc", repo.entries[0].OrderID)
}

func TestAuditService_Log_RepoErrorIsSwallowed(t *testing.T) {
	repo := newCapturingAuditRepo()
	repo.err = errors.New("db down")
	svc := NewAuditService(repo, zerolog.Nop())

	// Must not panic or block the caller.
	svc.Log(context.Background(), &domain.AuditLog{
		ID:     uuid.New(),
		Action: domain.AuditActionOrderCreated,
	})
	repo.wait(t)
}

func TestAuditService_Log_NilRepoOnlyLogs(t *testing.T) {
	svc := NewAuditService(nil, zerolog.Nop())

	assert.NotPanics(t, func() {
		svc.Log(context.Background(), &domain.AuditLog{
			ID:     uuid.New(),
			Action: domain.AuditActionPaymentVerified,
		})
	})
}
