package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// traducen al envelope {code, message} con su status correspondiente:
// NotFound→404, Forbidden→403, Validation→400, Conflict→409, Upstream→502.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrAccountNotFound    = errors.New("cuenta no encontrada")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrValidation         = errors.New("entrada inválida")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrDuplicateQuote     = errors.New("ya existe una cotización para esa orden y proveedor")
	ErrDuplicateAssignment = errors.New("el staff ya está asignado a esa orden")
	ErrVendorNotVerified  = errors.New("el proveedor no está verificado")
	ErrQuoteNotPending    = errors.New("la cotización ya no está pendiente")
	ErrOrderNotDeletable  = errors.New("la orden no se puede eliminar en su estado actual")
	ErrInvalidStatus      = errors.New("estado inválido")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
	ErrUploadFailed       = errors.New("fallo al subir el archivo al storage")
)

// IsConflict agrupa los errores que el borde HTTP reporta como 409.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrEmailAlreadyExists) ||
		errors.Is(err, ErrDuplicateQuote) ||
		errors.Is(err, ErrDuplicateAssignment) ||
		errors.Is(err, ErrQuoteNotPending) ||
		errors.Is(err, ErrOrderNotDeletable) ||
		errors.Is(err, ErrInvalidTransition)
}
