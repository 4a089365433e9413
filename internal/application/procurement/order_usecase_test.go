package procurement

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/dto"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
)

func TestCreateOrder_ManagerCreaEnPending(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, true)

	resp, err := e.orderUC.Create(ctx, callerOf(manager, nil), dto.CreateOrderRequest{
		VendorID:     vendor.ID,
		Materials:    json.RawMessage(`[{"name":"arena","qty":10}]`),
		DeliveryDate: "2026-09-15",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	assert.Equal(t, manager.ID, resp.ManagerID)
	require.NotNil(t, resp.DeliveryDate)
	assert.Contains(t, e.indexer.Indexed, "order_"+resp.ID)
}

func TestCreateOrder_StaffNoPuedeCrear(t *testing.T) {
	e := newTestEnv()
	staff := e.addAccount(entity.RoleStaff, "staff@acme.com")

	_, err := e.orderUC.Create(context.Background(), callerOf(staff, nil), dto.CreateOrderRequest{
		VendorID:  "v1",
		Materials: json.RawMessage(`[]`),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateOrder_MaterialsInvalidoEsValidacion(t *testing.T) {
	e := newTestEnv()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")

	_, err := e.orderUC.Create(context.Background(), callerOf(manager, nil), dto.CreateOrderRequest{
		VendorID:  "v1",
		Materials: json.RawMessage(`{rotísimo`),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateOrder_VendorInexistenteEsNotFound(t *testing.T) {
	e := newTestEnv()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")

	_, err := e.orderUC.Create(context.Background(), callerOf(manager, nil), dto.CreateOrderRequest{
		VendorID:  "no-existe",
		Materials: json.RawMessage(`[{"name":"arena"}]`),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetOrder_StaffSinAsignacionRecibeNotFound(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, true)
	staff := e.addAccount(entity.RoleStaff, "staff@acme.com")
	order := e.addOrder(manager.ID, vendor.ID, entity.OrderStatusOrdered)

	_, err := e.orderUC.GetByID(ctx, callerOf(staff, nil), order.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "la orden no asignada no debe distinguirse de una inexistente")

	e.addAssignment(order.ID, staff.ID)
	resp, err := e.orderUC.GetByID(ctx, callerOf(staff, nil), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, resp.ID)
}

func TestUpdateOrderStatus_StaffAsignadoAvanzaLaCadena(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, true)
	staff := e.addAccount(entity.RoleStaff, "staff@acme.com")
	order := e.addOrder(manager.ID, vendor.ID, entity.OrderStatusOrdered)
	e.addAssignment(order.ID, staff.ID)

	resp, err := e.orderUC.UpdateStatus(ctx, callerOf(staff, nil), order.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusInProgress})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusInProgress, resp.Status)
}

func TestUpdateOrderStatus_SaltoDeEstadoEsConflict(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, true)
	order := e.addOrder(manager.ID, vendor.ID, entity.OrderStatusPending)

	_, err := e.orderUC.UpdateStatus(ctx, callerOf(manager, nil), order.ID, dto.UpdateOrderStatusRequest{Status: entity.OrderStatusDelivered})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.True(t, domain.IsConflict(err))

	stored, _ := e.orders.GetByID(ctx, order.ID)
	assert.Equal(t, entity.OrderStatusPending, stored.Status)
}

func TestUpdateOrderStatus_StringFueraDeEnumEsValidacion(t *testing.T) {
	e := newTestEnv()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")

	_, err := e.orderUC.UpdateStatus(context.Background(), callerOf(manager, nil), "x", dto.UpdateOrderStatusRequest{Status: "shipped"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestDeleteOrder_SoloEnPendingOCancelled(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, true)

	enCurso := e.addOrder(manager.ID, vendor.ID, entity.OrderStatusInProgress)
	err := e.orderUC.Delete(ctx, callerOf(manager, nil), enCurso.ID)
	assert.ErrorIs(t, err, domain.ErrOrderNotDeletable)

	pendiente := e.addOrder(manager.ID, vendor.ID, entity.OrderStatusPending)
	err = e.orderUC.Delete(ctx, callerOf(manager, nil), pendiente.ID)
	require.NoError(t, err)
	assert.Contains(t, e.indexer.Removed, "order_"+pendiente.ID)

	gone, _ := e.orders.GetByID(ctx, pendiente.ID)
	assert.Nil(t, gone)
}

func TestDeleteOrder_VendorDestinoNoPuedeBorrar(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, true)
	order := e.addOrder(manager.ID, vendor.ID, entity.OrderStatusPending)

	// el vendor ve la orden (le apunta), así que la denegación es Forbidden
	err := e.orderUC.Delete(ctx, callerOf(vendorAcc, vendor), order.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListOrders_ManagerSoloVeLasSuyas(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	m1 := e.addAccount(entity.RoleManager, "m1@acme.com")
	m2 := e.addAccount(entity.RoleManager, "m2@acme.com")
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, true)
	mia := e.addOrder(m1.ID, vendor.ID, entity.OrderStatusPending)
	e.addOrder(m2.ID, vendor.ID, entity.OrderStatusPending)

	resp, err := e.orderUC.List(ctx, callerOf(m1, nil), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, mia.ID, resp.Items[0].ID)
}
