package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
)

func TestOrderListScope_PorRol(t *testing.T) {
	assert.Equal(t, policy.OrderScope{ManagerID: "m1"}, policy.OrderListScope(manager))
	assert.Equal(t, policy.OrderScope{StaffID: "s1"}, policy.OrderListScope(staff))
	assert.Equal(t, policy.OrderScope{VendorID: "v1"}, policy.OrderListScope(vendor))
}

func TestOrderListScope_VendorSinPerfil_ResultadoVacio(t *testing.T) {
	scope := policy.OrderListScope(orphanVendor)
	assert.True(t, scope.Empty, "vendor sin perfil debe listar vacío, no fallar")
}

func TestOrderListScope_RolDesconocido_ResultadoVacio(t *testing.T) {
	raro := policy.Caller{Account: account("x1", "auditor")}
	assert.True(t, policy.OrderListScope(raro).Empty)
}

func TestQuoteListScope_PorRol(t *testing.T) {
	assert.Equal(t, policy.QuoteScope{OrderManagerID: "m1"}, policy.QuoteListScope(manager))
	assert.Equal(t, policy.QuoteScope{VendorID: "v1"}, policy.QuoteListScope(vendor))
	assert.True(t, policy.QuoteListScope(staff).Empty, "el staff no participa de cotizaciones")
	assert.True(t, policy.QuoteListScope(orphanVendor).Empty)
}

func TestAssignmentListScope_PorRol(t *testing.T) {
	assert.Equal(t, policy.AssignmentScope{OrderManagerID: "m1"}, policy.AssignmentListScope(manager))
	assert.Equal(t, policy.AssignmentScope{StaffID: "s1"}, policy.AssignmentListScope(staff))
	assert.True(t, policy.AssignmentListScope(vendor).Empty)
}
