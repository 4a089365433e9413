package procurement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/dto"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
)

func TestCreateVendor_ManagerCreaSinVerificar(t *testing.T) {
	e := newTestEnv()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")

	resp, err := e.vendorUC.Create(context.Background(), callerOf(manager, nil), dto.CreateVendorRequest{
		Name:         "Materiales del Sur",
		ContactEmail: "Ventas@Sur.com",
	})
	require.NoError(t, err)
	assert.False(t, resp.IsVerified)
	assert.Equal(t, "ventas@sur.com", resp.ContactEmail)
	assert.Equal(t, "Net 30", resp.PaymentTerms)
	assert.Contains(t, e.indexer.Indexed, "vendor_"+resp.ID)
}

func TestCreateVendor_StaffNoPuede(t *testing.T) {
	e := newTestEnv()
	staff := e.addAccount(entity.RoleStaff, "staff@acme.com")

	_, err := e.vendorUC.Create(context.Background(), callerOf(staff, nil), dto.CreateVendorRequest{
		Name:         "X",
		ContactEmail: "x@x.com",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestVerifyVendor_HabilitaLaCotizacion(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, false)

	resp, err := e.vendorUC.Verify(ctx, callerOf(manager, nil), vendor.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsVerified)

	stored, _ := e.vendors.GetByID(ctx, vendor.ID)
	assert.True(t, stored.IsVerified)
}

func TestVerifyVendor_VendorNoSeAutoVerifica(t *testing.T) {
	e := newTestEnv()
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, false)

	_, err := e.vendorUC.Verify(context.Background(), callerOf(vendorAcc, vendor), vendor.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateVendor_VendorSoloSuPropioPerfil(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, true)
	otroAcc := e.addAccount(entity.RoleVendor, "otro@proveedor.com")
	otro := e.addVendorProfile(otroAcc, true)

	nombre := "Nuevo Nombre SA"
	resp, err := e.vendorUC.Update(ctx, callerOf(vendorAcc, vendor), vendor.ID, dto.UpdateVendorRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Nuevo Nombre SA", resp.Name)

	_, err = e.vendorUC.Update(ctx, callerOf(vendorAcc, vendor), otro.ID, dto.UpdateVendorRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrForbidden, "el directorio es visible: perfil ajeno deniega, no oculta")
}

func TestListVendors_NoManagerSoloVeVerificados(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")
	staff := e.addAccount(entity.RoleStaff, "staff@acme.com")
	v1Acc := e.addAccount(entity.RoleVendor, "v1@proveedor.com")
	e.addVendorProfile(v1Acc, true)
	v2Acc := e.addAccount(entity.RoleVendor, "v2@proveedor.com")
	e.addVendorProfile(v2Acc, false)

	deStaff, err := e.vendorUC.List(ctx, callerOf(staff, nil), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, deStaff.Items, 1)
	assert.True(t, deStaff.Items[0].IsVerified)

	deManager, err := e.vendorUC.List(ctx, callerOf(manager, nil), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, deManager.Items, 2)
}
