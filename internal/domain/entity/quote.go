package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cotización: pending → accepted | rejected (ambos terminales).
const (
	QuoteStatusPending  = "pending"
	QuoteStatusAccepted = "accepted"
	QuoteStatusRejected = "rejected"
)

// ValidQuoteDecision indica si el estado es una decisión válida del manager.
func ValidQuoteDecision(s string) bool {
	return s == QuoteStatusAccepted || s == QuoteStatusRejected
}

// Quote es la cotización de un proveedor sobre una orden que lo tiene como
// destino. A lo sumo una por par (order, vendor): el proveedor edita la suya,
// no re-envía. Price es NUMERIC(10,2); siempre positivo.
type Quote struct {
	ID        string
	OrderID   string // FK a purchase_orders
	VendorID  string // FK a vendor_profiles
	Price     decimal.Decimal
	Notes     string
	Status    string // ver constantes QuoteStatus*
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Pending indica si la cotización sigue abierta a edición/decisión.
func (q *Quote) Pending() bool {
	return q.Status == QuoteStatusPending
}
