package repository

import (
	"context"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
)

// SearchHit es un resultado desnormalizado de la búsqueda por palabra clave.
type SearchHit struct {
	ObjectID string
	Type     string // vendor | order | quote
	Name     string
	Status   string
}

// StatsRepository agrupa consultas de solo lectura para dashboard y búsqueda
// (conteos por estado y keyword match con ILIKE).
type StatsRepository interface {
	CountOrdersByStatus(ctx context.Context, scope policy.OrderScope) (map[string]int, error)
	CountQuotesByStatus(ctx context.Context, scope policy.QuoteScope) (map[string]int, error)
	// SearchVendors/SearchOrders/SearchQuotes hacen match del patrón (ya
	// normalizado y envuelto en %) contra los campos de texto de cada entidad.
	SearchVendors(ctx context.Context, pattern string, onlyVerified bool, limit int) ([]*entity.VendorProfile, error)
	SearchOrders(ctx context.Context, pattern string, scope policy.OrderScope, limit int) ([]*entity.PurchaseOrder, error)
	SearchQuotes(ctx context.Context, pattern string, scope policy.QuoteScope, limit int) ([]*entity.Quote, error)
}
