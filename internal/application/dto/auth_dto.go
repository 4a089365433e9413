package dto

import "time"

// RegisterVendorRequest registro público de proveedor: crea la cuenta (rol
// vendor) y el perfil de negocio sin verificar, en una sola transacción.
type RegisterVendorRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	BusinessType string `json:"business_type"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Country      string `json:"country"`
	TaxID        string `json:"tax_id"`
}

// CreateAccountRequest alta de cuenta interna (manager/staff) por un manager.
type CreateAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountResponse representación pública de una cuenta (sin hash).
type AccountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token + cuenta.
type LoginResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}

// RegisterVendorResponse cuenta creada + perfil creado.
type RegisterVendorResponse struct {
	User   AccountResponse `json:"user"`
	Vendor VendorResponse  `json:"vendor"`
}
