package procurement

import (
	"context"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/repository"
)

// OrderPDFGenerator produce el resumen imprimible de una orden.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.PurchaseOrder, vendor *entity.VendorProfile, quotes []*entity.Quote) ([]byte, error)
}

// OrderPDFUseCase arma el PDF de resumen de una orden visible para el caller.
// Las cotizaciones solo aparecen para el manager dueño; staff y vendor
// reciben el resumen sin precios de terceros.
type OrderPDFUseCase struct {
	orders  *OrderUseCase
	vendors repository.VendorProfileRepository
	quotes  repository.QuoteRepository
	gen     OrderPDFGenerator
}

// NewOrderPDFUseCase construye el caso de uso.
func NewOrderPDFUseCase(orders *OrderUseCase, vendors repository.VendorProfileRepository, quotes repository.QuoteRepository, gen OrderPDFGenerator) *OrderPDFUseCase {
	return &OrderPDFUseCase{orders: orders, vendors: vendors, quotes: quotes, gen: gen}
}

// Render genera los bytes del PDF.
func (uc *OrderPDFUseCase) Render(ctx context.Context, caller policy.Caller, orderID string) ([]byte, error) {
	order, _, err := uc.orders.VisibleOrder(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}
	vendor, err := uc.vendors.GetByID(ctx, order.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}

	var quotes []*entity.Quote
	if caller.Role() == entity.RoleManager {
		quotes, err = uc.quotes.ListByOrder(ctx, order.ID)
		if err != nil {
			return nil, err
		}
	}
	return uc.gen.GenerateOrderPDF(ctx, order, vendor, quotes)
}
