package entity

import "time"

// Estados de una orden de compra. Cadena hacia adelante:
// pending → ordered → in_progress → delivered → inspected → completed.
// cancelled es alcanzable desde cualquier estado no terminal.
const (
	OrderStatusPending    = "pending"
	OrderStatusOrdered    = "ordered"
	OrderStatusInProgress = "in_progress"
	OrderStatusDelivered  = "delivered"
	OrderStatusInspected  = "inspected"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// orderTransitions define las transiciones explícitas permitidas vía PATCH.
// La transición implícita pending→ordered por aceptación de cotización pasa
// por aquí también (ordered está en la lista de pending).
var orderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusOrdered, OrderStatusCancelled},
	OrderStatusOrdered:    {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusInProgress: {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {OrderStatusInspected, OrderStatusCancelled},
	OrderStatusInspected:  {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

// ValidOrderStatus indica si el string pertenece a la enumeración de estados.
func ValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// PurchaseOrder es una orden de compra: pertenece a un manager y apunta a un
// VendorProfile. Materials es un payload estructurado opaco (JSONB en la DB).
type PurchaseOrder struct {
	ID                  string
	ManagerID           string // FK a accounts (rol manager)
	VendorID            string // FK a vendor_profiles
	Materials           []byte // JSON crudo, el core no lo interpreta
	Status              string // ver constantes OrderStatus*
	DeliveryDate        *time.Time
	SpecialInstructions string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CanTransition indica si la orden puede pasar de su estado actual a target.
func (o *PurchaseOrder) CanTransition(target string) bool {
	for _, next := range orderTransitions[o.Status] {
		if next == target {
			return true
		}
	}
	return false
}

// Deletable indica si la orden puede eliminarse: solo en pending o cancelled.
func (o *PurchaseOrder) Deletable() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusCancelled
}

// Terminal indica si el estado actual ya no admite transición alguna.
func (o *PurchaseOrder) Terminal() bool {
	return len(orderTransitions[o.Status]) == 0
}
