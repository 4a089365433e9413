package dto

// SearchHitResponse un resultado de búsqueda desnormalizado.
type SearchHitResponse struct {
	ObjectID string `json:"objectID"`
	Type     string `json:"type"` // vendor | order | quote
	Name     string `json:"name"`
	Status   string `json:"status,omitempty"`
}

// SearchResponse resultados de la búsqueda por palabra clave.
type SearchResponse struct {
	Hits []SearchHitResponse `json:"hits"`
}

// DashboardResponse conteos por estado acotados al rol del caller.
type DashboardResponse struct {
	Role   string         `json:"role"`
	Orders map[string]int `json:"orders"`
	Quotes map[string]int `json:"quotes,omitempty"`
}
