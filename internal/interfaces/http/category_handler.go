package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/application/usecase"
	"github.com/jsanmartinc/puntoventa-api/pkg/validator"
)

// CategoryHandler maneja las peticiones HTTP para categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create POST /api/v1/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
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
	return respondCreated(c, "categoría creada", out)
}

// List GET /api/v1/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, "categorías", out)
}

// GetByID GET /api/v1/categories/:id
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "categoría no encontrada")
	}
	return respondOK(c, "categoría", out)
}

// Update PATCH /api/v1/categories/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	var in dto.UpdateCategoryRequest
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
		return respondNotFound(c, "categoría no encontrada")
	}
	return respondOK(c, "categoría actualizada", out)
}

// Delete DELETE /api/v1/categories/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "categoría eliminada", nil)
}
