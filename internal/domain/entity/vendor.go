package entity

import "time"

// VendorProfile representa el registro de negocio de un proveedor, ligado 1:1
// a una cuenta con rol vendor vía AccountID. El espacio de IDs es distinto al
// de Account: las órdenes y cotizaciones referencian VendorProfile.ID, nunca
// Account.ID.
type VendorProfile struct {
	ID           string
	AccountID    string // FK a accounts; vacío si el perfil fue creado por un manager sin cuenta asociada aún
	Name         string
	ContactEmail string
	ContactPhone string
	Address      string
	City         string
	Country      string
	BusinessType string // ej. "Construction Materials", "Equipment Rental"
	Description  string
	TaxID        string
	PaymentTerms string // ej. "Net 30"
	IsVerified   bool   // solo un manager puede activarlo; requerido para cotizar
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
