package postgres

import (
	"context"

	"donation-gateway/internal/core/domain"
	"donation-gateway/internal/core/ports"
)

type auditRepo struct {
	pool Pool
}

// NewAuditRepository creates a PostgreSQL-backed AuditRepository.
func NewAuditRepository(pool Pool) ports.AuditRepository {
	return &auditRepo{pool: pool}
}

func (r *auditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs (id, order_id, action, details, ip_address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.OrderID, string(entry.Action), entry.Details, entry.IPAddress, entry.CreatedAt,
	)
	return err
}
