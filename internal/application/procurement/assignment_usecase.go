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

// AssignmentUseCase asignaciones orden↔staff. El par (orden, staff) es único;
// el duplicado lo rechaza el constraint de la DB como Conflict.
type AssignmentUseCase struct {
	assignments repository.AssignmentRepository
	orders      repository.OrderRepository
	accounts    repository.AccountRepository
}

// NewAssignmentUseCase construye el caso de uso.
func NewAssignmentUseCase(assignments repository.AssignmentRepository, orders repository.OrderRepository, accounts repository.AccountRepository) *AssignmentUseCase {
	return &AssignmentUseCase{assignments: assignments, orders: orders, accounts: accounts}
}

// Create asigna un staff a una orden del manager caller.
func (uc *AssignmentUseCase) Create(ctx context.Context, caller policy.Caller, in dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	if in.OrderID == "" || in.StaffID == "" {
		return nil, domain.ErrValidation
	}
	order, err := uc.orders.GetByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if d := policy.Authorize(caller, policy.ActionOrderRead, policy.Resource{Order: order}); !d.Allowed {
		return nil, domain.ErrNotFound
	}
	if d := policy.Authorize(caller, policy.ActionAssignmentCreate, policy.Resource{Order: order}); !d.Allowed {
		return nil, domain.ErrForbidden
	}
	staff, err := uc.accounts.GetByID(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}
	if staff == nil || staff.Role != entity.RoleStaff || !staff.Active() {
		return nil, domain.ErrValidation
	}
	assignment := &entity.OrderAssignment{
		ID:         uuid.New().String(),
		OrderID:    order.ID,
		StaffID:    staff.ID,
		Notes:      in.Notes,
		AssignedAt: time.Now(),
	}
	if err := uc.assignments.Create(ctx, assignment); err != nil {
		return nil, err
	}
	return toAssignmentResponse(assignment), nil
}

// List devuelve las asignaciones dentro del alcance del rol.
func (uc *AssignmentUseCase) List(ctx context.Context, caller policy.Caller, page dto.PageRequest) (*dto.AssignmentListResponse, error) {
	page.DefaultPage()
	scope := policy.AssignmentListScope(caller)
	list, err := uc.assignments.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := lo.Map(list, func(a *entity.OrderAssignment, _ int) dto.AssignmentResponse {
		return *toAssignmentResponse(a)
	})
	return &dto.AssignmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete quita una asignación. Solo el manager dueño de la orden; para el
// resto la asignación ajena simplemente no existe.
func (uc *AssignmentUseCase) Delete(ctx context.Context, caller policy.Caller, assignmentID string) error {
	assignment, err := uc.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if assignment == nil {
		return domain.ErrNotFound
	}
	order, err := uc.orders.GetByID(ctx, assignment.OrderID)
	if err != nil {
		return err
	}
	visible := false
	if order != nil {
		switch {
		case caller.Role() == entity.RoleManager && order.ManagerID == caller.Account.ID:
			visible = true
		case caller.Role() == entity.RoleStaff && assignment.StaffID == caller.Account.ID:
			visible = true
		}
	}
	if !visible {
		return domain.ErrNotFound
	}
	if d := policy.Authorize(caller, policy.ActionAssignmentDelete, policy.Resource{Order: order}); !d.Allowed {
		return domain.ErrForbidden
	}
	return uc.assignments.Delete(ctx, assignmentID)
}

func toAssignmentResponse(a *entity.OrderAssignment) *dto.AssignmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AssignmentResponse{
		ID:         a.ID,
		OrderID:    a.OrderID,
		StaffID:    a.StaffID,
		Notes:      a.Notes,
		AssignedAt: a.AssignedAt,
	}
}
