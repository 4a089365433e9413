package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/dto"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/procurement"
)

// DocumentHandler maneja los documentos adjuntos de órdenes (protegido).
type DocumentHandler struct {
	uc *procurement.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *procurement.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Upload sube un archivo multipart ("file") con su tipo declarado ("file_type").
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if orderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	fileType := c.FormValue("file_type")
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo multipart 'file' requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	out, err := h.uc.Upload(c.UserContext(), GetCaller(c), orderID, fileType, fh.Filename, contentType, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByOrder documentos de una orden visible para el caller.
func (h *DocumentHandler) ListByOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if orderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ListByOrder(c.UserContext(), GetCaller(c), orderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
