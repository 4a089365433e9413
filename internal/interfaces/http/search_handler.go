package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/procurement"
)

// SearchHandler maneja la búsqueda por palabra clave y el dashboard (protegido).
type SearchHandler struct {
	uc *procurement.SearchUseCase
}

// NewSearchHandler construye el handler.
func NewSearchHandler(uc *procurement.SearchUseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search busca vendors, órdenes y cotizaciones por palabra clave (?q=).
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), GetCaller(c), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Dashboard conteos por estado acotados al rol.
func (h *SearchHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext(), GetCaller(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
