package postgres

import (
	"context"
	"fmt"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste un documento adjunto.
func (r *DocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	query := `
		INSERT INTO documents (id, order_id, uploaded_by, file_url, file_type, object_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.OrderID, d.UploadedBy, d.FileURL, d.FileType, d.ObjectID, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// ListByOrder lista los documentos de una orden.
func (r *DocumentRepo) ListByOrder(ctx context.Context, orderID string) ([]*entity.Document, error) {
	query := `
		SELECT id, order_id, uploaded_by, file_url, file_type, object_id, created_at
		FROM documents WHERE order_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var out []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(&d.ID, &d.OrderID, &d.UploadedBy, &d.FileURL, &d.FileType, &d.ObjectID, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}
