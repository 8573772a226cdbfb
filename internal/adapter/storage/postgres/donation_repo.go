package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"donation-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// DonationOrderRepo implements ports.DonationOrderRepository.
type DonationOrderRepo struct {
	pool Pool
}

// NewDonationOrderRepo creates a new DonationOrderRepo.
func NewDonationOrderRepo(pool Pool) *DonationOrderRepo {
	return &DonationOrderRepo{pool: pool}
}

// Create inserts a new donation order row.
func (r *DonationOrderRepo) Create(ctx context.Context, d *domain.DonationOrder) error {
	query := `INSERT INTO donation_orders (id, order_id, receipt, amount_minor, currency, status, payment_id, client_ip, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		d.ID, d.OrderID, d.Receipt, d.AmountMinor, d.Currency,
		d.Status, d.PaymentID, d.ClientIP, d.CreatedAt, d.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("insert donation order: %w", err)
	}
	return nil
}

// GetByOrderID fetches a donation order by its gateway order id.
// Returns nil, nil when no row exists.
func (r *DonationOrderRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.DonationOrder, error) {
	query := `SELECT id, order_id, receipt, amount_minor, currency, status, payment_id, client_ip, created_at, resolved_at
		FROM donation_orders WHERE order_id = $1`

	d := &domain.DonationOrder{}
	err := r.pool.QueryRow(ctx, query, orderID).Scan(
		&d.ID, &d.OrderID, &d.Receipt, &d.AmountMinor, &d.Currency,
		&d.Status, &d.PaymentID, &d.ClientIP, &d.CreatedAt, &d.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get donation order: %w", err)
	}
	return d, nil
}

// Resolve records the terminal outcome of a flow. Only non-terminal rows are
// touched: a confirmation replay must not overwrite an earlier outcome.
func (r *DonationOrderRepo) Resolve(ctx context.Context, orderID string, status domain.DonationStatus, paymentID string) error {
	query := `UPDATE donation_orders SET status = $1, payment_id = NULLIF($2, ''), resolved_at = $3
		WHERE order_id = $4 AND status = 'CREATED'`

	tag, err := r.pool.Exec(ctx, query, status, paymentID, time.Now().UTC(), orderID)
	if err != nil {
		return fmt.Errorf("resolve donation order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("donation order not found or already resolved: %s", orderID)
	}
	return nil
}
