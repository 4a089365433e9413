package dto

import "time"

// DocumentResponse representación pública de un documento adjunto.
type DocumentResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	UploadedBy string    `json:"uploaded_by"`
	FileURL    string    `json:"file_url"`
	FileType   string    `json:"file_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// DocumentListResponse documentos de una orden.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
}
