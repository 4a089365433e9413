package repository

import (
	"context"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
)

// OrderRepository define el puerto de persistencia para PurchaseOrder.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	Update(ctx context.Context, order *entity.PurchaseOrder) error
	Delete(ctx context.Context, id string) error
	// List aplica el scope de rol calculado por policy; scope.Empty ⇒ nil, nil.
	List(ctx context.Context, scope policy.OrderScope, limit, offset int) ([]*entity.PurchaseOrder, error)
}
