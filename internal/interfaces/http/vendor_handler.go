package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/dto"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/procurement"
)

// VendorHandler maneja el directorio de proveedores (protegido).
type VendorHandler struct {
	uc *procurement.VendorUseCase
}

// NewVendorHandler construye el handler.
func NewVendorHandler(uc *procurement.VendorUseCase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

// Create alta de perfil por un manager.
func (h *VendorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVendorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetCaller(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List directorio de proveedores (manager ve todos, el resto verificados).
func (h *VendorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetCaller(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualización parcial del perfil.
func (h *VendorHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateVendorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), GetCaller(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Verify marca el perfil como verificado (solo manager).
func (h *VendorHandler) Verify(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Verify(c.UserContext(), GetCaller(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
