package dto

import "time"

// CreateAssignmentRequest asignación de una orden a un staff por el manager dueño.
type CreateAssignmentRequest struct {
	OrderID string `json:"order_id"`
	StaffID string `json:"staff_id"`
	Notes   string `json:"notes"`
}

// AssignmentResponse representación pública de una asignación.
type AssignmentResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	StaffID    string    `json:"staff_id"`
	Notes      string    `json:"notes,omitempty"`
	AssignedAt time.Time `json:"assigned_at"`
}

// AssignmentListResponse listado paginado de asignaciones.
type AssignmentListResponse struct {
	Items []AssignmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
