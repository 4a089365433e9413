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

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación del puerto AssignmentRepository sobre PostgreSQL.
type AssignmentRepo struct {
	q Querier
}

// NewAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAssignmentRepository(q Querier) *AssignmentRepo {
	return &AssignmentRepo{q: q}
}

// Create persiste una asignación. El par (order_id, staff_id) duplicado se
// traduce a ErrDuplicateAssignment.
func (r *AssignmentRepo) Create(ctx context.Context, a *entity.OrderAssignment) error {
	query := `
		INSERT INTO order_assignments (id, order_id, staff_id, notes, assigned_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, a.ID, a.OrderID, a.StaffID, a.Notes, a.AssignedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateAssignment
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por ID.
func (r *AssignmentRepo) GetByID(ctx context.Context, id string) (*entity.OrderAssignment, error) {
	query := `SELECT id, order_id, staff_id, notes, assigned_at FROM order_assignments WHERE id = $1`
	var a entity.OrderAssignment
	err := r.q.QueryRow(ctx, query, id).Scan(&a.ID, &a.OrderID, &a.StaffID, &a.Notes, &a.AssignedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return &a, nil
}

// Exists indica si el staff está asignado a la orden.
func (r *AssignmentRepo) Exists(ctx context.Context, orderID, staffID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM order_assignments WHERE order_id = $1 AND staff_id = $2)`,
		orderID, staffID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check assignment: %w", err)
	}
	return exists, nil
}

// Delete elimina una asignación.
func (r *AssignmentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM order_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

// List lista asignaciones aplicando el scope de rol: manager vía join con sus
// órdenes, staff por staff_id.
func (r *AssignmentRepo) List(ctx context.Context, scope policy.AssignmentScope, limit, offset int) ([]*entity.OrderAssignment, error) {
	if scope.Empty {
		return nil, nil
	}
	var (
		query string
		args  []any
	)
	switch {
	case scope.OrderManagerID != "":
		query = `SELECT a.id, a.order_id, a.staff_id, a.notes, a.assigned_at
			FROM order_assignments a
			JOIN purchase_orders o ON o.id = a.order_id
			WHERE o.manager_id = $1 ORDER BY a.assigned_at DESC LIMIT $2 OFFSET $3`
		args = []any{scope.OrderManagerID, limit, offset}
	case scope.StaffID != "":
		query = `SELECT id, order_id, staff_id, notes, assigned_at FROM order_assignments
			WHERE staff_id = $1 ORDER BY assigned_at DESC LIMIT $2 OFFSET $3`
		args = []any{scope.StaffID, limit, offset}
	default:
		return nil, nil
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var out []*entity.OrderAssignment
	for rows.Next() {
		var a entity.OrderAssignment
		if err := rows.Scan(&a.ID, &a.OrderID, &a.StaffID, &a.Notes, &a.AssignedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
