// Package policy concentra la matriz rol × acción de autorización en una
// tabla de capacidades cerrada. Las reglas son funciones puras: los casos de
// uso cargan las entidades (y la existencia de asignación staff↔orden) y
// preguntan aquí; este paquete nunca toca la base de datos.
//
// Las precondiciones de ciclo de vida (orden eliminable, cotización aún
// pendiente, unicidad de cotización) NO viven aquí: son Conflict del motor de
// ciclo de vida, no Forbidden de autorización.
package policy

import "github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"

// Action identifica cada operación autorizable.
type Action string

const (
	ActionOrderCreate       Action = "order.create"
	ActionOrderRead         Action = "order.read"
	ActionOrderUpdateStatus Action = "order.update_status"
	ActionOrderDelete       Action = "order.delete"

	ActionAssignmentCreate Action = "assignment.create"
	ActionAssignmentDelete Action = "assignment.delete"

	ActionQuoteRead   Action = "quote.read"
	ActionQuoteSubmit Action = "quote.submit"
	ActionQuoteDecide Action = "quote.decide"
	ActionQuoteEdit   Action = "quote.edit"
	ActionQuoteDelete Action = "quote.delete"

	ActionVendorCreate Action = "vendor.create"
	ActionVendorVerify Action = "vendor.verify"
	ActionVendorUpdate Action = "vendor.update"

	ActionDocumentUpload Action = "document.upload"

	ActionAccountCreate Action = "account.create"
	ActionAccountDelete Action = "account.delete"
)

// Caller es la identidad resuelta del solicitante: la cuenta activa y, si el
// rol es vendor, su perfil vinculado (nil si no existe; eso deniega acciones
// de vendor sin reventar).
type Caller struct {
	Account *entity.Account
	Vendor  *entity.VendorProfile
}

// Role devuelve el rol de la cuenta ("" si no hay cuenta).
func (c Caller) Role() string {
	if c.Account == nil {
		return ""
	}
	return c.Account.Role
}

// VendorID devuelve el ID del perfil de vendor del caller ("" si no tiene).
func (c Caller) VendorID() string {
	if c.Vendor == nil {
		return ""
	}
	return c.Vendor.ID
}

// Resource agrupa las entidades sobre las que se decide. Solo se llenan los
// campos relevantes a la acción; Assigned indica si existe una asignación
// (orden, caller) cuando el caller es staff.
type Resource struct {
	Order    *entity.PurchaseOrder
	Quote    *entity.Quote
	Vendor   *entity.VendorProfile
	Assigned bool
}

// Decision es el resultado: Allow o Deny con motivo.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow construye una decisión positiva.
func Allow() Decision { return Decision{Allowed: true} }

// Deny construye una decisión negativa con motivo.
func Deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

type rule func(c Caller, r Resource) Decision

// capabilities es la tabla de capacidades. Rol desconocido o acción sin
// entrada ⇒ Deny. Agregar un rol es agregar una columna aquí, no esparcir
// condicionales.
var capabilities = map[string]map[Action]rule{
	entity.RoleManager: {
		ActionOrderCreate:       func(c Caller, r Resource) Decision { return Allow() },
		ActionOrderRead:         managerOwnsOrder,
		ActionOrderUpdateStatus: managerOwnsOrder,
		ActionOrderDelete:       managerOwnsOrder,
		ActionAssignmentCreate:  managerOwnsOrder,
		ActionAssignmentDelete:  managerOwnsOrder,
		ActionQuoteRead:         managerOwnsQuoteOrder,
		ActionQuoteDecide:       managerOwnsQuoteOrder,
		ActionQuoteDelete:       managerOwnsQuoteOrder,
		ActionVendorCreate:      func(c Caller, r Resource) Decision { return Allow() },
		ActionVendorVerify:      func(c Caller, r Resource) Decision { return Allow() },
		ActionVendorUpdate:      func(c Caller, r Resource) Decision { return Allow() },
		ActionDocumentUpload:    managerOwnsOrder,
		ActionAccountCreate:     func(c Caller, r Resource) Decision { return Allow() },
		ActionAccountDelete:     func(c Caller, r Resource) Decision { return Allow() },
	},
	entity.RoleStaff: {
		ActionOrderRead:         staffAssigned,
		ActionOrderUpdateStatus: staffAssigned,
		ActionDocumentUpload:    staffAssigned,
	},
	entity.RoleVendor: {
		ActionOrderRead:         vendorTargeted,
		ActionOrderUpdateStatus: vendorTargeted,
		ActionQuoteRead:         vendorOwnsQuote,
		ActionQuoteSubmit:       vendorCanSubmit,
		ActionQuoteEdit:         vendorOwnsQuote,
		ActionQuoteDelete:       vendorOwnsQuote,
		ActionVendorUpdate:      vendorOwnProfile,
		ActionDocumentUpload:    vendorTargeted,
	},
}

// Authorize aplica la tabla de capacidades. El orden existencia→lectura→acción
// (404 antes que 403) lo garantiza el caso de uso, no esta función.
func Authorize(c Caller, action Action, r Resource) Decision {
	if c.Account == nil || !c.Account.Active() {
		return Deny("cuenta inexistente o inactiva")
	}
	actions, ok := capabilities[c.Role()]
	if !ok {
		return Deny("rol desconocido")
	}
	rl, ok := actions[action]
	if !ok {
		return Deny("el rol " + c.Role() + " no puede ejecutar " + string(action))
	}
	return rl(c, r)
}

func managerOwnsOrder(c Caller, r Resource) Decision {
	if r.Order == nil {
		return Deny("orden no provista")
	}
	if r.Order.ManagerID != c.Account.ID {
		return Deny("la orden pertenece a otro manager")
	}
	return Allow()
}

func managerOwnsQuoteOrder(c Caller, r Resource) Decision {
	if r.Quote == nil || r.Order == nil {
		return Deny("cotización u orden no provista")
	}
	if r.Order.ManagerID != c.Account.ID {
		return Deny("la orden de la cotización pertenece a otro manager")
	}
	return Allow()
}

func staffAssigned(c Caller, r Resource) Decision {
	if r.Order == nil {
		return Deny("orden no provista")
	}
	if !r.Assigned {
		return Deny("el staff no está asignado a esta orden")
	}
	return Allow()
}

func vendorTargeted(c Caller, r Resource) Decision {
	if c.Vendor == nil {
		return Deny("la cuenta vendor no tiene perfil vinculado")
	}
	if r.Order == nil {
		return Deny("orden no provista")
	}
	if r.Order.VendorID != c.Vendor.ID {
		return Deny("la orden apunta a otro proveedor")
	}
	return Allow()
}

// vendorCanSubmit: vendor verificado y destinatario de la orden. La unicidad
// de la cotización la resuelve el constraint de la DB (Conflict, no Deny).
func vendorCanSubmit(c Caller, r Resource) Decision {
	if d := vendorTargeted(c, r); !d.Allowed {
		return d
	}
	if !c.Vendor.IsVerified {
		return Deny("el proveedor no está verificado")
	}
	return Allow()
}

func vendorOwnsQuote(c Caller, r Resource) Decision {
	if c.Vendor == nil {
		return Deny("la cuenta vendor no tiene perfil vinculado")
	}
	if r.Quote == nil {
		return Deny("cotización no provista")
	}
	if r.Quote.VendorID != c.Vendor.ID {
		return Deny("la cotización pertenece a otro proveedor")
	}
	return Allow()
}

func vendorOwnProfile(c Caller, r Resource) Decision {
	if c.Vendor == nil {
		return Deny("la cuenta vendor no tiene perfil vinculado")
	}
	if r.Vendor == nil {
		return Deny("perfil no provisto")
	}
	if r.Vendor.ID != c.Vendor.ID {
		return Deny("el perfil pertenece a otro proveedor")
	}
	return Allow()
}
