package dto

import "time"

// CreateVendorRequest alta de perfil de proveedor por un manager.
type CreateVendorRequest struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Country      string `json:"country"`
	BusinessType string `json:"business_type"`
	Description  string `json:"description"`
	TaxID        string `json:"tax_id"`
	PaymentTerms string `json:"payment_terms"`
}

// UpdateVendorRequest actualización parcial de campos no verificables.
// IsVerified NO está aquí a propósito: se cambia solo vía el endpoint de
// verificación de manager.
type UpdateVendorRequest struct {
	Name         *string `json:"name"`
	ContactPhone *string `json:"contact_phone"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
	BusinessType *string `json:"business_type"`
	Description  *string `json:"description"`
	PaymentTerms *string `json:"payment_terms"`
}

// VendorResponse representación pública de un perfil de proveedor.
type VendorResponse struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id,omitempty"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	Country      string    `json:"country,omitempty"`
	BusinessType string    `json:"business_type,omitempty"`
	Description  string    `json:"description,omitempty"`
	TaxID        string    `json:"tax_id,omitempty"`
	PaymentTerms string    `json:"payment_terms,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VendorListResponse listado paginado de proveedores.
type VendorListResponse struct {
	Items []VendorResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
