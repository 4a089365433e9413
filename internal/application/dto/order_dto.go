package dto

import (
	"encoding/json"
	"time"
)

// CreateOrderRequest alta de orden de compra por un manager.
// Materials es un payload JSON opaco (lista de materiales, cantidades, etc.).
// DeliveryDate en formato "2006-01-02"; vacío = sin fecha.
type CreateOrderRequest struct {
	VendorID            string          `json:"vendor_id"`
	Materials           json.RawMessage `json:"materials"`
	DeliveryDate        string          `json:"delivery_date"`
	SpecialInstructions string          `json:"special_instructions"`
}

// UpdateOrderStatusRequest PATCH de estado explícito.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse representación pública de una orden.
type OrderResponse struct {
	ID                  string          `json:"id"`
	ManagerID           string          `json:"manager_id"`
	VendorID            string          `json:"vendor_id"`
	Materials           json.RawMessage `json:"materials"`
	Status              string          `json:"status"`
	DeliveryDate        *time.Time      `json:"delivery_date,omitempty"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// OrderListResponse listado paginado de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
