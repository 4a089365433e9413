package procurement

import (
	"context"
	"io"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del par
// Quote.status + PurchaseOrder.status en la aceptación de cotizaciones:
// o persisten ambos o ninguno.
type TxRunner interface {
	RunQuoteDecision(ctx context.Context, fn func(
		quotes repository.QuoteRepository,
		orders repository.OrderRepository,
	) error) error
}

// ObjectStorage es el colaborador externo de archivos (GCS). El core nunca
// inspecciona el contenido: sube el stream y guarda la URL durable.
// Un fallo aquí es fatal para la petición de upload.
type ObjectStorage interface {
	Upload(ctx context.Context, objectName, contentType string, r io.Reader) (url, objectID string, err error)
}

// Notifier es el colaborador de correo. Fire-and-forget: las implementaciones
// loguean los fallos y jamás los propagan; una notificación caída no puede
// revertir ni bloquear la mutación primaria.
type Notifier interface {
	QuoteSubmitted(ctx context.Context, managerEmail, orderID, price string)
	QuoteDecided(ctx context.Context, vendorEmail, orderID, status string)
}

// SearchIndexer es el colaborador de búsqueda. Recibe los campos
// desnormalizados tras cada escritura; ranking y tokenización son suyos.
// Fire-and-forget igual que Notifier.
type SearchIndexer interface {
	IndexVendor(ctx context.Context, v *entity.VendorProfile)
	IndexOrder(ctx context.Context, o *entity.PurchaseOrder)
	IndexQuote(ctx context.Context, q *entity.Quote)
	Remove(ctx context.Context, objectID string)
}
