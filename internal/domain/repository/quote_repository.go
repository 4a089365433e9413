package repository

import (
	"context"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
)

// QuoteRepository define el puerto de persistencia para Quote.
// Create debe traducir la violación del unique (order_id, vendor_id) a
// domain.ErrDuplicateQuote: la unicidad la serializa la DB, no la aplicación.
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, id string) (*entity.Quote, error)
	GetByOrderAndVendor(ctx context.Context, orderID, vendorID string) (*entity.Quote, error)
	Update(ctx context.Context, quote *entity.Quote) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope policy.QuoteScope, limit, offset int) ([]*entity.Quote, error)
	ListByOrder(ctx context.Context, orderID string) ([]*entity.Quote, error)
}
