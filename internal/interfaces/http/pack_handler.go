package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/application/usecase"
	"github.com/jsanmartinc/puntoventa-api/pkg/validator"
)

// PackHandler maneja las peticiones HTTP para packs. Los listados devuelven
// los packs con sus líneas de receta embebidas.
type PackHandler struct {
	uc *usecase.PackUseCase
}

// NewPackHandler construye el handler.
func NewPackHandler(uc *usecase.PackUseCase) *PackHandler {
	return &PackHandler{uc: uc}
}

// Create POST /api/v1/packs
func (h *PackHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePackRequest
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
	return respondCreated(c, "pack creado", out)
}

// List GET /api/v1/packs
func (h *PackHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, "packs", out)
}

// GetByID GET /api/v1/packs/:id
func (h *PackHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "pack no encontrado")
	}
	return respondOK(c, "pack", out)
}

// Update PATCH /api/v1/packs/:id
func (h *PackHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	var in dto.UpdatePackRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return respondValidation(c, errs)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "pack no encontrado")
	}
	return respondOK(c, "pack actualizado", out)
}

// Delete DELETE /api/v1/packs/:id
func (h *PackHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "pack eliminado", nil)
}
