package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitQuoteRequest alta de cotización por el proveedor destino de la orden.
type SubmitQuoteRequest struct {
	OrderID string          `json:"order_id"`
	Price   decimal.Decimal `json:"price"`
	Notes   string          `json:"notes"`
}

// UpdateQuoteRequest edición de precio/notas por el vendor emisor (solo pending).
type UpdateQuoteRequest struct {
	Price *decimal.Decimal `json:"price"`
	Notes *string          `json:"notes"`
}

// DecideQuoteRequest decisión del manager: accepted | rejected.
type DecideQuoteRequest struct {
	Status string `json:"status"`
}

// QuoteResponse representación pública de una cotización.
type QuoteResponse struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	VendorID  string          `json:"vendor_id"`
	Price     decimal.Decimal `json:"price"`
	Notes     string          `json:"notes,omitempty"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// QuoteListResponse listado paginado de cotizaciones.
type QuoteListResponse struct {
	Items []QuoteResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
