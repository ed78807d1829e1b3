package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/application/usecase"
	"github.com/jsanmartinc/puntoventa-api/pkg/validator"
)

// ProductCategoryHandler maneja la relación producto-categoría, incluyendo
// las operaciones por lote.
type ProductCategoryHandler struct {
	uc *usecase.ProductCategoryUseCase
}

// NewProductCategoryHandler construye el handler.
func NewProductCategoryHandler(uc *usecase.ProductCategoryUseCase) *ProductCategoryHandler {
	return &ProductCategoryHandler{uc: uc}
}

// Create POST /api/v1/products-category
func (h *ProductCategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductCategoryRequest
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
	return respondCreated(c, "relación creada", out)
}

// CreateBatch POST /api/v1/products-category/batch
func (h *ProductCategoryHandler) CreateBatch(c *fiber.Ctx) error {
	var in dto.BatchProductCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return respondValidation(c, errs)
	}
	out, err := h.uc.CreateBatch(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondCreated(c, "relaciones creadas", out)
}

// ReplaceBatch PATCH /api/v1/products-category/batch
func (h *ProductCategoryHandler) ReplaceBatch(c *fiber.Ctx) error {
	var in dto.BatchProductCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return respondValidation(c, errs)
	}
	if err := h.uc.ReplaceForProduct(in); err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "categorías del producto reemplazadas", nil)
}

// Update PATCH /api/v1/products-category
func (h *ProductCategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return respondValidation(c, errs)
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "relación actualizada", out)
}

// ListByProduct GET /api/v1/products-category/product/:productId
func (h *ProductCategoryHandler) ListByProduct(c *fiber.Ctx) error {
	id := c.Params("productId")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	out, err := h.uc.ListByProduct(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, "relaciones del producto", out)
}

// ListByCategory GET /api/v1/products-category/category/:categoryId
func (h *ProductCategoryHandler) ListByCategory(c *fiber.Ctx) error {
	id := c.Params("categoryId")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	out, err := h.uc.ListByCategory(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, "relaciones de la categoría", out)
}

// Delete DELETE /api/v1/products-category/:productId/:categoryId
func (h *ProductCategoryHandler) Delete(c *fiber.Ctx) error {
	productID := c.Params("productId")
	categoryID := c.Params("categoryId")
	if !validator.IsUUID(productID) || !validator.IsUUID(categoryID) {
		return respondBadRequest(c, "id inválido", nil)
	}
	if err := h.uc.Delete(productID, categoryID); err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "relación eliminada", nil)
}
