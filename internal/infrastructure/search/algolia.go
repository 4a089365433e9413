// Package search implementa el puerto SearchIndexer contra la API REST de
// Algolia. La búsqueda primaria del sistema corre contra PostgreSQL; este
// índice es un espejo desnormalizado que se alimenta tras cada escritura.
// Fire-and-forget: los fallos se loguean y no se propagan.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/procurement"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/pkg/config"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/pkg/logger"
)

var _ procurement.SearchIndexer = (*AlgoliaIndexer)(nil)

// AlgoliaIndexer espejo de búsqueda sobre Algolia. Con AppID vacío actúa
// como no-op.
type AlgoliaIndexer struct {
	appID  string
	apiKey string
	index  string
	client *http.Client
	log    *logger.Logger
}

// New crea el indexador.
func New(cfg config.SearchConfig, log *logger.Logger) *AlgoliaIndexer {
	return &AlgoliaIndexer{
		appID:  cfg.AlgoliaAppID,
		apiKey: cfg.AlgoliaAPIKey,
		index:  cfg.IndexName,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

// IndexVendor actualiza el registro del perfil en el índice.
func (a *AlgoliaIndexer) IndexVendor(ctx context.Context, v *entity.VendorProfile) {
	a.put(ctx, "vendor_"+v.ID, map[string]any{
		"type":          "vendor",
		"name":          v.Name,
		"business_type": v.BusinessType,
		"city":          v.City,
		"is_verified":   v.IsVerified,
	})
}

// IndexOrder actualiza el registro de la orden en el índice.
func (a *AlgoliaIndexer) IndexOrder(ctx context.Context, o *entity.PurchaseOrder) {
	a.put(ctx, "order_"+o.ID, map[string]any{
		"type":                 "order",
		"status":               o.Status,
		"manager_id":           o.ManagerID,
		"vendor_id":            o.VendorID,
		"special_instructions": o.SpecialInstructions,
	})
}

// IndexQuote actualiza el registro de la cotización en el índice.
func (a *AlgoliaIndexer) IndexQuote(ctx context.Context, q *entity.Quote) {
	a.put(ctx, "quote_"+q.ID, map[string]any{
		"type":      "quote",
		"status":    q.Status,
		"order_id":  q.OrderID,
		"vendor_id": q.VendorID,
		"notes":     q.Notes,
	})
}

// Remove borra un registro del índice.
func (a *AlgoliaIndexer) Remove(ctx context.Context, objectID string) {
	if a.appID == "" {
		return
	}
	endpoint := a.objectURL(objectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		a.log.Error().Err(err).Msg("armar request a Algolia")
		return
	}
	a.do(req, objectID)
}

func (a *AlgoliaIndexer) put(ctx context.Context, objectID string, record map[string]any) {
	if a.appID == "" {
		return
	}
	raw, err := json.Marshal(record)
	if err != nil {
		a.log.Error().Err(err).Msg("serializar registro de índice")
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, a.objectURL(objectID), bytes.NewReader(raw))
	if err != nil {
		a.log.Error().Err(err).Msg("armar request a Algolia")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	a.do(req, objectID)
}

func (a *AlgoliaIndexer) objectURL(objectID string) string {
	return fmt.Sprintf("https://%s.algolia.net/1/indexes/%s/%s",
		a.appID, url.PathEscape(a.index), url.PathEscape(objectID))
}

func (a *AlgoliaIndexer) do(req *http.Request, objectID string) {
	req.Header.Set("X-Algolia-Application-Id", a.appID)
	req.Header.Set("X-Algolia-API-Key", a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		a.log.Warn().Err(err).Str("object_id", objectID).Msg("sincronizar índice de búsqueda")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		a.log.Warn().Int("status", resp.StatusCode).Str("object_id", objectID).Msg("Algolia rechazó la operación")
	}
}
