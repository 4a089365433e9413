package procurement

import (
	"context"
	"time"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/dto"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/repository"
)

// DecideQuoteUseCase aplica la decisión del manager sobre una cotización.
// La aceptación es un comando transaccional explícito: dentro de una misma
// tx se marca la cotización accepted y, si la orden no está ya en ordered,
// se fuerza a ordered. Jamás puede quedar una mitad escrita.
type DecideQuoteUseCase struct {
	tx       TxRunner
	quotes   repository.QuoteRepository
	orders   repository.OrderRepository
	vendors  repository.VendorProfileRepository
	notifier Notifier
	indexer  SearchIndexer
}

// NewDecideQuoteUseCase construye el caso de uso.
func NewDecideQuoteUseCase(tx TxRunner, quotes repository.QuoteRepository, orders repository.OrderRepository, vendors repository.VendorProfileRepository, notifier Notifier, indexer SearchIndexer) *DecideQuoteUseCase {
	return &DecideQuoteUseCase{tx: tx, quotes: quotes, orders: orders, vendors: vendors, notifier: notifier, indexer: indexer}
}

// Decide marca la cotización accepted o rejected.
//   - string fuera de {accepted, rejected} ⇒ ErrInvalidStatus
//   - cotización invisible para el caller ⇒ ErrNotFound
//   - caller sin capacidad de decidir ⇒ ErrForbidden
//   - cotización ya decidida ⇒ ErrQuoteNotPending
//   - orden en estado terminal ⇒ ErrConflict (no se acepta sobre cancelada/completada)
func (uc *DecideQuoteUseCase) Decide(ctx context.Context, caller policy.Caller, quoteID string, in dto.DecideQuoteRequest) (*dto.QuoteResponse, error) {
	if !entity.ValidQuoteDecision(in.Status) {
		return nil, domain.ErrInvalidStatus
	}
	quote, err := uc.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	order, err := uc.orders.GetByID(ctx, quote.OrderID)
	if err != nil {
		return nil, err
	}
	res := policy.Resource{Quote: quote, Order: order}
	if d := policy.Authorize(caller, policy.ActionQuoteRead, res); !d.Allowed {
		return nil, domain.ErrNotFound
	}
	if d := policy.Authorize(caller, policy.ActionQuoteDecide, res); !d.Allowed {
		return nil, domain.ErrForbidden
	}
	if !quote.Pending() {
		return nil, domain.ErrQuoteNotPending
	}
	if in.Status == entity.QuoteStatusAccepted && order.Terminal() {
		return nil, domain.ErrConflict
	}

	var decided *entity.Quote
	err = uc.tx.RunQuoteDecision(ctx, func(quotes repository.QuoteRepository, orders repository.OrderRepository) error {
		// Releer dentro de la tx: otra petición pudo decidir primero.
		q, err := quotes.GetByID(ctx, quoteID)
		if err != nil {
			return err
		}
		if q == nil {
			return domain.ErrNotFound
		}
		if !q.Pending() {
			return domain.ErrQuoteNotPending
		}
		now := time.Now()
		q.Status = in.Status
		q.UpdatedAt = now
		if err := quotes.Update(ctx, q); err != nil {
			return err
		}
		if in.Status == entity.QuoteStatusAccepted {
			o, err := orders.GetByID(ctx, q.OrderID)
			if err != nil {
				return err
			}
			if o == nil {
				return domain.ErrNotFound
			}
			if o.Status != entity.OrderStatusOrdered {
				o.Status = entity.OrderStatusOrdered
				o.UpdatedAt = now
				if err := orders.Update(ctx, o); err != nil {
					return err
				}
			}
		}
		decided = q
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifyVendor(ctx, decided)
	uc.indexer.IndexQuote(ctx, decided)
	return toQuoteResponse(decided), nil
}

func (uc *DecideQuoteUseCase) notifyVendor(ctx context.Context, quote *entity.Quote) {
	vendor, err := uc.vendors.GetByID(ctx, quote.VendorID)
	if err != nil || vendor == nil {
		return
	}
	uc.notifier.QuoteDecided(ctx, vendor.ContactEmail, quote.OrderID, quote.Status)
}
