package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/dto"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/procurement"
)

// AssignmentHandler maneja las asignaciones orden↔staff (protegido).
type AssignmentHandler struct {
	uc *procurement.AssignmentUseCase
}

// NewAssignmentHandler construye el handler.
func NewAssignmentHandler(uc *procurement.AssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

// Create asigna un staff a una orden (manager dueño).
func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetCaller(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List asignaciones dentro del alcance del rol.
func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetCaller(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete quita una asignación (manager dueño de la orden).
func (h *AssignmentHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.UserContext(), GetCaller(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
