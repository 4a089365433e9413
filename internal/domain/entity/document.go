package entity

import "time"

// Tipos de archivo admitidos para documentos adjuntos (whitelist cerrada).
// El contenido nunca se inspecciona; solo se valida el tipo declarado.
var documentTypes = map[string]struct{}{
	"invoice":  {},
	"receipt":  {},
	"contract": {},
	"photo":    {},
}

// ValidDocumentType indica si el tipo declarado está en la whitelist.
func ValidDocumentType(t string) bool {
	_, ok := documentTypes[t]
	return ok
}

// Document es un adjunto de una orden: URL durable devuelta por el object
// storage más el tipo declarado y quién lo subió.
type Document struct {
	ID         string
	OrderID    string // FK a purchase_orders
	UploadedBy string // FK a accounts
	FileURL    string
	FileType   string // ver documentTypes
	ObjectID   string // identificador en el object storage (para borrado futuro)
	CreatedAt  time.Time
}
