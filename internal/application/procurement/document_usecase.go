package procurement

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/dto"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/repository"
)

// DocumentUseCase adjuntos de órdenes: subida a object storage y listado.
// La visibilidad sigue a la de la orden padre.
type DocumentUseCase struct {
	docs    repository.DocumentRepository
	orders  *OrderUseCase
	storage ObjectStorage
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(docs repository.DocumentRepository, orders *OrderUseCase, storage ObjectStorage) *DocumentUseCase {
	return &DocumentUseCase{docs: docs, orders: orders, storage: storage}
}

// Upload sube el archivo al storage y registra el documento. A diferencia de
// las notificaciones, el fallo del storage sí es fatal: sin URL durable no
// hay documento que registrar.
func (uc *DocumentUseCase) Upload(ctx context.Context, caller policy.Caller, orderID, fileType, fileName, contentType string, r io.Reader) (*dto.DocumentResponse, error) {
	if !entity.ValidDocumentType(fileType) {
		return nil, domain.ErrValidation
	}
	order, assigned, err := uc.orders.VisibleOrder(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}
	res := policy.Resource{Order: order, Assigned: assigned}
	if d := policy.Authorize(caller, policy.ActionDocumentUpload, res); !d.Allowed {
		return nil, domain.ErrForbidden
	}

	objectName := fmt.Sprintf("orders/%s/%s%s", order.ID, uuid.New().String(), filepath.Ext(fileName))
	url, objectID, err := uc.storage.Upload(ctx, objectName, contentType, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	doc := &entity.Document{
		ID:         uuid.New().String(),
		OrderID:    order.ID,
		UploadedBy: caller.Account.ID,
		FileURL:    url,
		FileType:   fileType,
		ObjectID:   objectID,
		CreatedAt:  time.Now(),
	}
	if err := uc.docs.Create(ctx, doc); err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// ListByOrder documentos de una orden visible para el caller.
func (uc *DocumentUseCase) ListByOrder(ctx context.Context, caller policy.Caller, orderID string) (*dto.DocumentListResponse, error) {
	order, _, err := uc.orders.VisibleOrder(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}
	list, err := uc.docs.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	items := lo.Map(list, func(d *entity.Document, _ int) dto.DocumentResponse {
		return *toDocumentResponse(d)
	})
	return &dto.DocumentListResponse{Items: items}, nil
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	if d == nil {
		return nil
	}
	return &dto.DocumentResponse{
		ID:         d.ID,
		OrderID:    d.OrderID,
		UploadedBy: d.UploadedBy,
		FileURL:    d.FileURL,
		FileType:   d.FileType,
		CreatedAt:  d.CreatedAt,
	}
}
