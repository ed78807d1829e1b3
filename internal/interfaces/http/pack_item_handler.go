package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/application/usecase"
	"github.com/jsanmartinc/puntoventa-api/pkg/validator"
)

// PackItemHandler maneja las líneas de receta. El POST hace upsert: si el
// par (pack, producto) ya tiene línea, las cantidades se suman.
type PackItemHandler struct {
	uc *usecase.PackItemUseCase
}

// NewPackItemHandler construye el handler.
func NewPackItemHandler(uc *usecase.PackItemUseCase) *PackItemHandler {
	return &PackItemHandler{uc: uc}
}

// Create POST /api/v1/pack-items
func (h *PackItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePackItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return respondValidation(c, errs)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondCreated(c, "línea de receta registrada", out)
}

// List GET /api/v1/pack-items
func (h *PackItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, "líneas de receta", out)
}

// GetByID GET /api/v1/pack-items/:id
func (h *PackItemHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "línea de receta no encontrada")
	}
	return respondOK(c, "línea de receta", out)
}

// ListByPack GET /api/v1/pack-items/pack/:packId
func (h *PackItemHandler) ListByPack(c *fiber.Ctx) error {
	id := c.Params("packId")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	out, err := h.uc.ListByPack(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, "líneas del pack", out)
}

// Replace PUT /api/v1/pack-items/:id
func (h *PackItemHandler) Replace(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	var in dto.UpdatePackItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return respondValidation(c, errs)
	}
	out, err := h.uc.Replace(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "línea de receta no encontrada")
	}
	return respondOK(c, "línea de receta actualizada", out)
}

// Delete DELETE /api/v1/pack-items/:id
func (h *PackItemHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "línea de receta eliminada", nil)
}
