package policy

import "github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"

// Los listados no se deniegan: se acotan. Cada scope describe el filtro que
// el repositorio debe aplicar según el rol del caller. Empty=true significa
// resultado vacío garantizado (ej. vendor sin perfil), nunca un error.

// OrderScope filtro de listado de órdenes.
type OrderScope struct {
	ManagerID string // órdenes cuyo manager es el caller
	StaffID   string // órdenes con asignación al caller
	VendorID  string // órdenes que apuntan al perfil del caller
	Empty     bool
}

// OrderListScope devuelve el alcance de listado de órdenes para el caller.
func OrderListScope(c Caller) OrderScope {
	switch c.Role() {
	case entity.RoleManager:
		return OrderScope{ManagerID: c.Account.ID}
	case entity.RoleStaff:
		return OrderScope{StaffID: c.Account.ID}
	case entity.RoleVendor:
		if c.Vendor == nil {
			return OrderScope{Empty: true}
		}
		return OrderScope{VendorID: c.Vendor.ID}
	default:
		return OrderScope{Empty: true}
	}
}

// QuoteScope filtro de listado de cotizaciones.
type QuoteScope struct {
	OrderManagerID string // cotizaciones sobre órdenes del manager
	VendorID       string // cotizaciones enviadas por el perfil del caller
	Empty          bool
}

// QuoteListScope devuelve el alcance de listado de cotizaciones.
// El staff no participa del flujo de cotización: lista vacía.
func QuoteListScope(c Caller) QuoteScope {
	switch c.Role() {
	case entity.RoleManager:
		return QuoteScope{OrderManagerID: c.Account.ID}
	case entity.RoleVendor:
		if c.Vendor == nil {
			return QuoteScope{Empty: true}
		}
		return QuoteScope{VendorID: c.Vendor.ID}
	default:
		return QuoteScope{Empty: true}
	}
}

// AssignmentScope filtro de listado de asignaciones.
type AssignmentScope struct {
	OrderManagerID string // asignaciones sobre órdenes del manager
	StaffID        string // asignaciones del propio staff
	Empty          bool
}

// AssignmentListScope devuelve el alcance de listado de asignaciones.
func AssignmentListScope(c Caller) AssignmentScope {
	switch c.Role() {
	case entity.RoleManager:
		return AssignmentScope{OrderManagerID: c.Account.ID}
	case entity.RoleStaff:
		return AssignmentScope{StaffID: c.Account.ID}
	default:
		return AssignmentScope{Empty: true}
	}
}
