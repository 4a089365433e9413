package entity

import "time"

// Roles del sistema (enumeración cerrada; cualquier otro valor se deniega).
const (
	RoleManager = "manager"
	RoleStaff   = "staff"
	RoleVendor  = "vendor"
)

// ValidRole indica si el rol pertenece a la enumeración cerrada.
func ValidRole(role string) bool {
	return role == RoleManager || role == RoleStaff || role == RoleVendor
}

// Account representa una identidad autenticable con rol.
// Las cuentas referenciadas por órdenes o asignaciones no se borran físicamente:
// se marcan con Status distinto de "active".
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // ver constantes Role*
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Active indica si la cuenta puede operar.
func (a *Account) Active() bool {
	return a != nil && a.Status == "active"
}
