package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/application/sales"
	"github.com/jsanmartinc/puntoventa-api/pkg/validator"
)

// DetailOrderHandler maneja las líneas de venta.
type DetailOrderHandler struct {
	uc *sales.DetailOrderUseCase
}

// NewDetailOrderHandler construye el handler.
func NewDetailOrderHandler(uc *sales.DetailOrderUseCase) *DetailOrderHandler {
	return &DetailOrderHandler{uc: uc}
}

// Create POST /api/v1/detail-orders
func (h *DetailOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDetailOrderRequest
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
	return respondCreated(c, "línea de venta registrada", out)
}

// List GET /api/v1/detail-orders
func (h *DetailOrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, "líneas de venta", out)
}

// GetByID GET /api/v1/detail-orders/:id
func (h *DetailOrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "línea de venta no encontrada")
	}
	return respondOK(c, "línea de venta", out)
}

// Delete DELETE /api/v1/detail-orders/:id
func (h *DetailOrderHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "línea de venta eliminada", nil)
}
