package postgres

import (
	"context"
	"fmt"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para dashboard y búsqueda por palabra
// clave. La búsqueda usa unaccent(lower(...)) para que los diacríticos no
// partan el match (la extensión se habilita en la migración inicial).
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountOrdersByStatus cuenta órdenes por estado dentro del scope del rol.
func (r *StatsRepo) CountOrdersByStatus(ctx context.Context, scope policy.OrderScope) (map[string]int, error) {
	if scope.Empty {
		return map[string]int{}, nil
	}
	var (
		query string
		args  []any
	)
	switch {
	case scope.ManagerID != "":
		query = `SELECT status, COUNT(*) FROM purchase_orders WHERE manager_id = $1 GROUP BY status`
		args = []any{scope.ManagerID}
	case scope.VendorID != "":
		query = `SELECT status, COUNT(*) FROM purchase_orders WHERE vendor_id = $1 GROUP BY status`
		args = []any{scope.VendorID}
	case scope.StaffID != "":
		query = `SELECT o.status, COUNT(*) FROM purchase_orders o
			JOIN order_assignments a ON a.order_id = o.id
			WHERE a.staff_id = $1 GROUP BY o.status`
		args = []any{scope.StaffID}
	default:
		return map[string]int{}, nil
	}
	return r.countRows(ctx, query, args...)
}

// CountQuotesByStatus cuenta cotizaciones por estado dentro del scope del rol.
func (r *StatsRepo) CountQuotesByStatus(ctx context.Context, scope policy.QuoteScope) (map[string]int, error) {
	if scope.Empty {
		return map[string]int{}, nil
	}
	var (
		query string
		args  []any
	)
	switch {
	case scope.OrderManagerID != "":
		query = `SELECT q.status, COUNT(*) FROM quotes q
			JOIN purchase_orders o ON o.id = q.order_id
			WHERE o.manager_id = $1 GROUP BY q.status`
		args = []any{scope.OrderManagerID}
	case scope.VendorID != "":
		query = `SELECT status, COUNT(*) FROM quotes WHERE vendor_id = $1 GROUP BY status`
		args = []any{scope.VendorID}
	default:
		return map[string]int{}, nil
	}
	return r.countRows(ctx, query, args...)
}

func (r *StatsRepo) countRows(ctx context.Context, query string, args ...any) (map[string]int, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// SearchVendors busca perfiles por nombre, tipo de negocio, ciudad o descripción.
func (r *StatsRepo) SearchVendors(ctx context.Context, pattern string, onlyVerified bool, limit int) ([]*entity.VendorProfile, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendor_profiles
		WHERE ($2 = false OR is_verified)
		AND (unaccent(lower(name)) LIKE $1
			OR unaccent(lower(business_type)) LIKE $1
			OR unaccent(lower(city)) LIKE $1
			OR unaccent(lower(description)) LIKE $1)
		ORDER BY name LIMIT $3`
	rows, err := r.q.Query(ctx, query, pattern, onlyVerified, limit)
	if err != nil {
		return nil, fmt.Errorf("search vendors: %w", err)
	}
	defer rows.Close()

	vendorRepo := &VendorProfileRepo{}
	var out []*entity.VendorProfile
	for rows.Next() {
		v, err := vendorRepo.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// SearchOrders busca órdenes por instrucciones especiales o materiales,
// dentro del scope del rol.
func (r *StatsRepo) SearchOrders(ctx context.Context, pattern string, scope policy.OrderScope, limit int) ([]*entity.PurchaseOrder, error) {
	if scope.Empty {
		return nil, nil
	}
	match := `(unaccent(lower(o.special_instructions)) LIKE $1 OR unaccent(lower(o.materials::text)) LIKE $1)`
	base := `SELECT o.id, o.manager_id, o.vendor_id, o.materials, o.status, o.delivery_date,
			o.special_instructions, o.created_at, o.updated_at
		FROM purchase_orders o`

	var (
		query string
		args  []any
	)
	switch {
	case scope.ManagerID != "":
		query = base + ` WHERE o.manager_id = $2 AND ` + match + ` ORDER BY o.created_at DESC LIMIT $3`
		args = []any{pattern, scope.ManagerID, limit}
	case scope.VendorID != "":
		query = base + ` WHERE o.vendor_id = $2 AND ` + match + ` ORDER BY o.created_at DESC LIMIT $3`
		args = []any{pattern, scope.VendorID, limit}
	case scope.StaffID != "":
		query = base + ` JOIN order_assignments a ON a.order_id = o.id
			WHERE a.staff_id = $2 AND ` + match + ` ORDER BY o.created_at DESC LIMIT $3`
		args = []any{pattern, scope.StaffID, limit}
	default:
		return nil, nil
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(
			&o.ID, &o.ManagerID, &o.VendorID, &o.Materials, &o.Status, &o.DeliveryDate,
			&o.SpecialInstructions, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

// SearchQuotes busca cotizaciones por notas, dentro del scope del rol.
func (r *StatsRepo) SearchQuotes(ctx context.Context, pattern string, scope policy.QuoteScope, limit int) ([]*entity.Quote, error) {
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
			WHERE o.manager_id = $2 AND unaccent(lower(q.notes)) LIKE $1
			ORDER BY q.created_at DESC LIMIT $3`
		args = []any{pattern, scope.OrderManagerID, limit}
	case scope.VendorID != "":
		query = `SELECT id, order_id, vendor_id, price, notes, status, created_at, updated_at
			FROM quotes WHERE vendor_id = $2 AND unaccent(lower(notes)) LIKE $1
			ORDER BY created_at DESC LIMIT $3`
		args = []any{pattern, scope.VendorID, limit}
	default:
		return nil, nil
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search quotes: %w", err)
	}
	defer rows.Close()

	quoteRepo := &QuoteRepo{}
	return quoteRepo.scanRows(rows)
}
