package procurement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/dto"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/repository"
)

// QuoteUseCase casos de uso de cotizaciones salvo la decisión del manager,
// que vive en DecideQuoteUseCase por su transacción dual.
type QuoteUseCase struct {
	quotes   repository.QuoteRepository
	orders   repository.OrderRepository
	accounts repository.AccountRepository
	notifier Notifier
	indexer  SearchIndexer
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(quotes repository.QuoteRepository, orders repository.OrderRepository, accounts repository.AccountRepository, notifier Notifier, indexer SearchIndexer) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, orders: orders, accounts: accounts, notifier: notifier, indexer: indexer}
}

// Submit crea la cotización del vendor destino sobre una orden. Un reintento
// del POST choca con el unique (order, vendor) y devuelve Conflict: la
// serialización la hace la DB, no un lock de aplicación.
func (uc *QuoteUseCase) Submit(ctx context.Context, caller policy.Caller, in dto.SubmitQuoteRequest) (*dto.QuoteResponse, error) {
	if in.OrderID == "" || !in.Price.IsPositive() {
		return nil, domain.ErrValidation
	}
	order, err := uc.orders.GetByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	// Visibilidad primero: una orden ajena se reporta como inexistente.
	if d := policy.Authorize(caller, policy.ActionOrderRead, policy.Resource{Order: order}); !d.Allowed {
		return nil, domain.ErrNotFound
	}
	if d := policy.Authorize(caller, policy.ActionQuoteSubmit, policy.Resource{Order: order}); !d.Allowed {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	quote := &entity.Quote{
		ID:        uuid.New().String(),
		OrderID:   order.ID,
		VendorID:  caller.Vendor.ID,
		Price:     in.Price.Round(2),
		Notes:     in.Notes,
		Status:    entity.QuoteStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.quotes.Create(ctx, quote); err != nil {
		return nil, err
	}
	uc.notifyManager(ctx, order, quote)
	uc.indexer.IndexQuote(ctx, quote)
	return toQuoteResponse(quote), nil
}

// GetByID devuelve la cotización si el caller tiene visibilidad.
func (uc *QuoteUseCase) GetByID(ctx context.Context, caller policy.Caller, quoteID string) (*dto.QuoteResponse, error) {
	quote, _, err := uc.visibleQuote(ctx, caller, quoteID)
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(quote), nil
}

// List devuelve las cotizaciones dentro del alcance del rol.
func (uc *QuoteUseCase) List(ctx context.Context, caller policy.Caller, page dto.PageRequest) (*dto.QuoteListResponse, error) {
	page.DefaultPage()
	scope := policy.QuoteListScope(caller)
	list, err := uc.quotes.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := lo.Map(list, func(q *entity.Quote, _ int) dto.QuoteResponse {
		return *toQuoteResponse(q)
	})
	return &dto.QuoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update edita precio/notas. Solo el vendor emisor y solo mientras la
// cotización siga pending; después, ErrQuoteNotPending (Conflict).
func (uc *QuoteUseCase) Update(ctx context.Context, caller policy.Caller, quoteID string, in dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	quote, _, err := uc.visibleQuote(ctx, caller, quoteID)
	if err != nil {
		return nil, err
	}
	if d := policy.Authorize(caller, policy.ActionQuoteEdit, policy.Resource{Quote: quote}); !d.Allowed {
		return nil, domain.ErrForbidden
	}
	if !quote.Pending() {
		return nil, domain.ErrQuoteNotPending
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, domain.ErrValidation
		}
		quote.Price = in.Price.Round(2)
	}
	if in.Notes != nil {
		quote.Notes = *in.Notes
	}
	quote.UpdatedAt = time.Now()
	if err := uc.quotes.Update(ctx, quote); err != nil {
		return nil, err
	}
	uc.indexer.IndexQuote(ctx, quote)
	return toQuoteResponse(quote), nil
}

// Delete elimina la cotización: el manager dueño de la orden siempre; el
// vendor emisor solo mientras esté pending.
func (uc *QuoteUseCase) Delete(ctx context.Context, caller policy.Caller, quoteID string) error {
	quote, order, err := uc.visibleQuote(ctx, caller, quoteID)
	if err != nil {
		return err
	}
	res := policy.Resource{Quote: quote, Order: order}
	if d := policy.Authorize(caller, policy.ActionQuoteDelete, res); !d.Allowed {
		return domain.ErrForbidden
	}
	if caller.Role() == entity.RoleVendor && !quote.Pending() {
		return domain.ErrQuoteNotPending
	}
	if err := uc.quotes.Delete(ctx, quoteID); err != nil {
		return err
	}
	uc.indexer.Remove(ctx, "quote_"+quoteID)
	return nil
}

// visibleQuote carga cotización y orden padre, colapsando la falta de
// visibilidad a NotFound (mismo criterio que VisibleOrder).
func (uc *QuoteUseCase) visibleQuote(ctx context.Context, caller policy.Caller, quoteID string) (*entity.Quote, *entity.PurchaseOrder, error) {
	quote, err := uc.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, nil, err
	}
	if quote == nil {
		return nil, nil, domain.ErrNotFound
	}
	order, err := uc.orders.GetByID(ctx, quote.OrderID)
	if err != nil {
		return nil, nil, err
	}
	res := policy.Resource{Quote: quote, Order: order}
	if d := policy.Authorize(caller, policy.ActionQuoteRead, res); !d.Allowed {
		return nil, nil, domain.ErrNotFound
	}
	return quote, order, nil
}

// notifyManager avisa al manager dueño de la orden; nunca falla la petición.
func (uc *QuoteUseCase) notifyManager(ctx context.Context, order *entity.PurchaseOrder, quote *entity.Quote) {
	manager, err := uc.accounts.GetByID(ctx, order.ManagerID)
	if err != nil || manager == nil {
		return
	}
	uc.notifier.QuoteSubmitted(ctx, manager.Email, order.ID, quote.Price.StringFixed(2))
}

func toQuoteResponse(q *entity.Quote) *dto.QuoteResponse {
	if q == nil {
		return nil
	}
	return &dto.QuoteResponse{
		ID:        q.ID,
		OrderID:   q.OrderID,
		VendorID:  q.VendorID,
		Price:     q.Price,
		Notes:     q.Notes,
		Status:    q.Status,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}
