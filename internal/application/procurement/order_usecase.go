package procurement

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/dto"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/repository"
)

// OrderUseCase casos de uso de órdenes de compra: creación, lectura acotada
// por rol, PATCH de estado contra la máquina de transiciones y borrado con
// precondición de estado.
type OrderUseCase struct {
	orders      repository.OrderRepository
	vendors     repository.VendorProfileRepository
	assignments repository.AssignmentRepository
	indexer     SearchIndexer
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, vendors repository.VendorProfileRepository, assignments repository.AssignmentRepository, indexer SearchIndexer) *OrderUseCase {
	return &OrderUseCase{orders: orders, vendors: vendors, assignments: assignments, indexer: indexer}
}

// Create crea una orden en pending apuntando a un VendorProfile existente.
func (uc *OrderUseCase) Create(ctx context.Context, caller policy.Caller, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if d := policy.Authorize(caller, policy.ActionOrderCreate, policy.Resource{}); !d.Allowed {
		return nil, domain.ErrForbidden
	}
	if in.VendorID == "" || len(in.Materials) == 0 {
		return nil, domain.ErrValidation
	}
	if !json.Valid(in.Materials) {
		return nil, domain.ErrValidation
	}
	var deliveryDate *time.Time
	if in.DeliveryDate != "" {
		d, err := time.Parse("2006-01-02", in.DeliveryDate)
		if err != nil {
			return nil, domain.ErrValidation
		}
		deliveryDate = &d
	}
	vendor, err := uc.vendors.GetByID(ctx, in.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:                  uuid.New().String(),
		ManagerID:           caller.Account.ID,
		VendorID:            vendor.ID,
		Materials:           in.Materials,
		Status:              entity.OrderStatusPending,
		DeliveryDate:        deliveryDate,
		SpecialInstructions: in.SpecialInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	uc.indexer.IndexOrder(ctx, order)
	return toOrderResponse(order), nil
}

// GetByID devuelve la orden si el caller tiene visibilidad sobre ella.
func (uc *OrderUseCase) GetByID(ctx context.Context, caller policy.Caller, orderID string) (*dto.OrderResponse, error) {
	order, _, err := uc.VisibleOrder(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List devuelve las órdenes dentro del alcance del rol, paginadas.
func (uc *OrderUseCase) List(ctx context.Context, caller policy.Caller, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	scope := policy.OrderListScope(caller)
	list, err := uc.orders.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := lo.Map(list, func(o *entity.PurchaseOrder, _ int) dto.OrderResponse {
		return *toOrderResponse(o)
	})
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdateStatus aplica una transición explícita de estado. String fuera de la
// enumeración ⇒ ErrInvalidStatus; transición no permitida ⇒ ErrInvalidTransition.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, caller policy.Caller, orderID string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidStatus
	}
	order, assigned, err := uc.VisibleOrder(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}
	res := policy.Resource{Order: order, Assigned: assigned}
	if d := policy.Authorize(caller, policy.ActionOrderUpdateStatus, res); !d.Allowed {
		return nil, domain.ErrForbidden
	}
	if !order.CanTransition(in.Status) {
		return nil, domain.ErrInvalidTransition
	}
	order.Status = in.Status
	order.UpdatedAt = time.Now()
	if err := uc.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	uc.indexer.IndexOrder(ctx, order)
	return toOrderResponse(order), nil
}

// Delete elimina la orden. Solo el manager dueño, y solo en pending/cancelled;
// en otro estado ⇒ ErrOrderNotDeletable (Conflict), sin tocar nada.
func (uc *OrderUseCase) Delete(ctx context.Context, caller policy.Caller, orderID string) error {
	order, assigned, err := uc.VisibleOrder(ctx, caller, orderID)
	if err != nil {
		return err
	}
	res := policy.Resource{Order: order, Assigned: assigned}
	if d := policy.Authorize(caller, policy.ActionOrderDelete, res); !d.Allowed {
		return domain.ErrForbidden
	}
	if !order.Deletable() {
		return domain.ErrOrderNotDeletable
	}
	if err := uc.orders.Delete(ctx, orderID); err != nil {
		return err
	}
	uc.indexer.Remove(ctx, "order_"+orderID)
	return nil
}

// VisibleOrder carga la orden y colapsa la falta de visibilidad a NotFound:
// quien sondea la orden de otro tenant recibe la misma señal que si no
// existiera. Devuelve además si el caller staff está asignado, para que las
// decisiones de acción posteriores no repitan la consulta.
func (uc *OrderUseCase) VisibleOrder(ctx context.Context, caller policy.Caller, orderID string) (*entity.PurchaseOrder, bool, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, false, err
	}
	if order == nil {
		return nil, false, domain.ErrNotFound
	}
	assigned := false
	if caller.Role() == entity.RoleStaff {
		assigned, err = uc.assignments.Exists(ctx, order.ID, caller.Account.ID)
		if err != nil {
			return nil, false, err
		}
	}
	res := policy.Resource{Order: order, Assigned: assigned}
	if d := policy.Authorize(caller, policy.ActionOrderRead, res); !d.Allowed {
		return nil, false, domain.ErrNotFound
	}
	return order, assigned, nil
}

func toOrderResponse(o *entity.PurchaseOrder) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:                  o.ID,
		ManagerID:           o.ManagerID,
		VendorID:            o.VendorID,
		Materials:           json.RawMessage(o.Materials),
		Status:              o.Status,
		DeliveryDate:        o.DeliveryDate,
		SpecialInstructions: o.SpecialInstructions,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}
