package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/application/usecase"
	"github.com/jsanmartinc/puntoventa-api/pkg/validator"
)

// ItemTypeHandler maneja el registro de tipos de item (product | pack).
type ItemTypeHandler struct {
	uc *usecase.ItemTypeUseCase
}

// NewItemTypeHandler construye el handler.
func NewItemTypeHandler(uc *usecase.ItemTypeUseCase) *ItemTypeHandler {
	return &ItemTypeHandler{uc: uc}
}

// Create POST /api/v1/item-types
func (h *ItemTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemTypeRequest
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
	return respondCreated(c, "tipo de item creado", out)
}

// List GET /api/v1/item-types
func (h *ItemTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, "tipos de item", out)
}

// GetByID GET /api/v1/item-types/:id
func (h *ItemTypeHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "tipo de item no encontrado")
	}
	return respondOK(c, "tipo de item", out)
}

// Replace PUT /api/v1/item-types/:id
func (h *ItemTypeHandler) Replace(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	var in dto.UpdateItemTypeRequest
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
		return respondNotFound(c, "tipo de item no encontrado")
	}
	return respondOK(c, "tipo de item actualizado", out)
}

// Delete DELETE /api/v1/item-types/:id
func (h *ItemTypeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "tipo de item eliminado", nil)
}
