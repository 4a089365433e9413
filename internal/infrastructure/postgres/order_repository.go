package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, manager_id, vendor_id, materials, status, delivery_date, special_instructions, created_at, updated_at`

// Create persiste una nueva orden. Materials se guarda como JSONB.
func (r *OrderRepo) Create(ctx context.Context, o *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.ManagerID, o.VendorID, o.Materials, o.Status, o.DeliveryDate,
		o.SpecialInstructions, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.ManagerID, &o.VendorID, &o.Materials, &o.Status, &o.DeliveryDate,
		&o.SpecialInstructions, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// Update actualiza una orden existente (estado incluido).
func (r *OrderRepo) Update(ctx context.Context, o *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders SET materials = $2, status = $3, delivery_date = $4,
			special_instructions = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Materials, o.Status, o.DeliveryDate, o.SpecialInstructions, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina la orden; documentos, cotizaciones y asignaciones caen por
// ON DELETE CASCADE.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// List lista órdenes aplicando el scope de rol: manager por manager_id,
// vendor por vendor_id y staff vía join con sus asignaciones.
func (r *OrderRepo) List(ctx context.Context, scope policy.OrderScope, limit, offset int) ([]*entity.PurchaseOrder, error) {
	if scope.Empty {
		return nil, nil
	}
	var (
		query string
		args  []any
	)
	switch {
	case scope.ManagerID != "":
		query = `SELECT ` + orderColumns + ` FROM purchase_orders
			WHERE manager_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = []any{scope.ManagerID, limit, offset}
	case scope.VendorID != "":
		query = `SELECT ` + orderColumns + ` FROM purchase_orders
			WHERE vendor_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = []any{scope.VendorID, limit, offset}
	case scope.StaffID != "":
		query = `SELECT o.id, o.manager_id, o.vendor_id, o.materials, o.status, o.delivery_date,
				o.special_instructions, o.created_at, o.updated_at
			FROM purchase_orders o
			JOIN order_assignments a ON a.order_id = o.id
			WHERE a.staff_id = $1 ORDER BY o.created_at DESC LIMIT $2 OFFSET $3`
		args = []any{scope.StaffID, limit, offset}
	default:
		return nil, nil
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
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
