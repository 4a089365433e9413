package procurement

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/dto"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
)

func TestSubmitQuote_VendorVerificadoCotizaYNotificaAlManager(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, true)
	order := e.addOrder(manager.ID, vendor.ID, entity.OrderStatusPending)

	resp, err := e.quoteUC.Submit(ctx, callerOf(vendorAcc, vendor), dto.SubmitQuoteRequest{
		OrderID: order.ID,
		Price:   decimal.NewFromFloat(1234.567),
		Notes:   "entrega en 5 días",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusPending, resp.Status)
	assert.Equal(t, "1234.57", resp.Price.StringFixed(2), "el precio se redondea a 2 decimales")

	require.Len(t, e.notifier.Submitted, 1)
	assert.Equal(t, manager.Email, e.notifier.Submitted[0].To)
}

func TestSubmitQuote_VendorSinVerificarEsForbidden(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, false)
	order := e.addOrder(manager.ID, vendor.ID, entity.OrderStatusPending)

	_, err := e.quoteUC.Submit(ctx, callerOf(vendorAcc, vendor), dto.SubmitQuoteRequest{
		OrderID: order.ID,
		Price:   decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden, "la orden le apunta, la ve, pero sin verificación no cotiza")
}

func TestSubmitQuote_OrdenAjenaEsNotFound(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, true)
	otroAcc := e.addAccount(entity.RoleVendor, "otro@proveedor.com")
	otro := e.addVendorProfile(otroAcc, true)
	order := e.addOrder(manager.ID, otro.ID, entity.OrderStatusPending)

	_, err := e.quoteUC.Submit(ctx, callerOf(vendorAcc, vendor), dto.SubmitQuoteRequest{
		OrderID: order.ID,
		Price:   decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmitQuote_DuplicadaEsConflict(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, true)
	order := e.addOrder(manager.ID, vendor.ID, entity.OrderStatusPending)
	e.addQuote(order.ID, vendor.ID, entity.QuoteStatusPending)

	_, err := e.quoteUC.Submit(ctx, callerOf(vendorAcc, vendor), dto.SubmitQuoteRequest{
		OrderID: order.ID,
		Price:   decimal.NewFromInt(200),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateQuote)
	assert.True(t, domain.IsConflict(err))
}

func TestSubmitQuote_PrecioNoPositivoEsValidacion(t *testing.T) {
	e := newTestEnv()
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, true)

	_, err := e.quoteUC.Submit(context.Background(), callerOf(vendorAcc, vendor), dto.SubmitQuoteRequest{
		OrderID: "alguna",
		Price:   decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateQuote_SoloMientrasPending(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, true)
	order := e.addOrder(manager.ID, vendor.ID, entity.OrderStatusOrdered)
	quote := e.addQuote(order.ID, vendor.ID, entity.QuoteStatusAccepted)

	precio := decimal.NewFromInt(999)
	_, err := e.quoteUC.Update(ctx, callerOf(vendorAcc, vendor), quote.ID, dto.UpdateQuoteRequest{Price: &precio})
	assert.ErrorIs(t, err, domain.ErrQuoteNotPending)
}

func TestUpdateQuote_VendorEditaPrecioYNotas(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, true)
	order := e.addOrder(manager.ID, vendor.ID, entity.OrderStatusPending)
	quote := e.addQuote(order.ID, vendor.ID, entity.QuoteStatusPending)

	precio := decimal.NewFromFloat(880.004)
	notas := "precio ajustado"
	resp, err := e.quoteUC.Update(ctx, callerOf(vendorAcc, vendor), quote.ID, dto.UpdateQuoteRequest{Price: &precio, Notes: &notas})
	require.NoError(t, err)
	assert.Equal(t, "880.00", resp.Price.StringFixed(2))
	assert.Equal(t, "precio ajustado", resp.Notes)
}

func TestDeleteQuote_VendorSoloMientrasPendingManagerSiempre(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	manager := e.addAccount(entity.RoleManager, "manager@acme.com")
	vendorAcc := e.addAccount(entity.RoleVendor, "vendor@proveedor.com")
	vendor := e.addVendorProfile(vendorAcc, true)
	order := e.addOrder(manager.ID, vendor.ID, entity.OrderStatusOrdered)
	quote := e.addQuote(order.ID, vendor.ID, entity.QuoteStatusAccepted)

	err := e.quoteUC.Delete(ctx, callerOf(vendorAcc, vendor), quote.ID)
	assert.ErrorIs(t, err, domain.ErrQuoteNotPending)

	err = e.quoteUC.Delete(ctx, callerOf(manager, nil), quote.ID)
	require.NoError(t, err)
	assert.Contains(t, e.indexer.Removed, "quote_"+quote.ID)
}

func TestListQuotes_VendorSinPerfilRecibeVacio(t *testing.T) {
	e := newTestEnv()
	huerfano := e.addAccount(entity.RoleVendor, "huerfano@proveedor.com")

	resp, err := e.quoteUC.List(context.Background(), callerOf(huerfano, nil), dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}
