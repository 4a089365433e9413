package repository

import (
	"context"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
)

// DocumentRepository define el puerto de persistencia para Document.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	ListByOrder(ctx context.Context, orderID string) ([]*entity.Document, error)
}
