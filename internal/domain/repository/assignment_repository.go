package repository

import (
	"context"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
)

// AssignmentRepository define el puerto de persistencia para OrderAssignment.
// Create debe traducir la violación del unique (order_id, staff_id) a
// domain.ErrDuplicateAssignment.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *entity.OrderAssignment) error
	GetByID(ctx context.Context, id string) (*entity.OrderAssignment, error)
	Exists(ctx context.Context, orderID, staffID string) (bool, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope policy.AssignmentScope, limit, offset int) ([]*entity.OrderAssignment, error)
}
