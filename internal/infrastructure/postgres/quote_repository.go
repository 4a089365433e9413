package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación del puerto QuoteRepository sobre PostgreSQL.
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

const quoteColumns = `id, order_id, vendor_id, price, notes, status, created_at, updated_at`

// Create persiste una nueva cotización. El par (order_id, vendor_id) duplicado
// se traduce a ErrDuplicateQuote: la serialización la hace el constraint.
func (r *QuoteRepo) Create(ctx context.Context, q *entity.Quote) error {
	query := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		q.ID, q.OrderID, q.VendorID, q.Price, q.Notes, q.Status, q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateQuote
		}
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización por ID.
func (r *QuoteRepo) GetByID(ctx context.Context, id string) (*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByOrderAndVendor obtiene la cotización de un vendor sobre una orden.
func (r *QuoteRepo) GetByOrderAndVendor(ctx context.Context, orderID, vendorID string) (*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE order_id = $1 AND vendor_id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, orderID, vendorID))
}

// Update actualiza una cotización existente (precio, notas, estado).
func (r *QuoteRepo) Update(ctx context.Context, q *entity.Quote) error {
	query := `
		UPDATE quotes SET price = $2, notes = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, q.ID, q.Price, q.Notes, q.Status, q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	return nil
}

// Delete elimina una cotización.
func (r *QuoteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	return nil
}

// List lista cotizaciones aplicando el scope de rol: manager vía join con sus
// órdenes, vendor por vendor_id.
func (r *QuoteRepo) List(ctx context.Context, scope policy.QuoteScope, limit, offset int) ([]*entity.Quote, error) {
	if scope.Empty {
		return nil, nil
	}
	var (
		query string
		args  []any
	)
	switch {
	case scope.OrderManagerID != "":
		query = `SELECT q.id, q.order_id, q.vendor_id, q.price, q.notes, q.status, q.created_at, q.updated_at
			FROM quotes q
			JOIN purchase_orders o ON o.id = q.order_id
			WHERE o.manager_id = $1 ORDER BY q.created_at DESC LIMIT $2 OFFSET $3`
		args = []any{scope.OrderManagerID, limit, offset}
	case scope.VendorID != "":
		query = `SELECT ` + quoteColumns + ` FROM quotes
			WHERE vendor_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = []any{scope.VendorID, limit, offset}
	default:
		return nil, nil
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// ListByOrder lista las cotizaciones de una orden.
func (r *QuoteRepo) ListByOrder(ctx context.Context, orderID string) ([]*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE order_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list quotes by order: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

func (r *QuoteRepo) scanOne(row pgx.Row) (*entity.Quote, error) {
	var q entity.Quote
	err := row.Scan(
		&q.ID, &q.OrderID, &q.VendorID, &q.Price, &q.Notes, &q.Status, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &q, nil
}

func (r *QuoteRepo) scanRows(rows pgx.Rows) ([]*entity.Quote, error) {
	var out []*entity.Quote
	for rows.Next() {
		var q entity.Quote
		if err := rows.Scan(
			&q.ID, &q.OrderID, &q.VendorID, &q.Price, &q.Notes, &q.Status, &q.CreatedAt, &q.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		out = append(out, &q)
	}
	return out, rows.Err()
}
