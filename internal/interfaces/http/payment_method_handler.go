package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/application/usecase"
	"github.com/jsanmartinc/puntoventa-api/pkg/validator"
)

// PaymentMethodHandler maneja las peticiones HTTP para medios de pago.
type PaymentMethodHandler struct {
	uc *usecase.PaymentMethodUseCase
}

// NewPaymentMethodHandler construye el handler.
func NewPaymentMethodHandler(uc *usecase.PaymentMethodUseCase) *PaymentMethodHandler {
	return &PaymentMethodHandler{uc: uc}
}

// Create POST /api/v1/payment-methods
func (h *PaymentMethodHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentMethodRequest
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
	return respondCreated(c, "medio de pago creado", out)
}

// List GET /api/v1/payment-methods
func (h *PaymentMethodHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, "medios de pago", out)
}

// GetByID GET /api/v1/payment-methods/:id
func (h *PaymentMethodHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "medio de pago no encontrado")
	}
	return respondOK(c, "medio de pago", out)
}

// Update PATCH /api/v1/payment-methods/:id
func (h *PaymentMethodHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	var in dto.UpdatePaymentMethodRequest
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
		return respondNotFound(c, "medio de pago no encontrado")
	}
	return respondOK(c, "medio de pago actualizado", out)
}

// Delete DELETE /api/v1/payment-methods/:id
func (h *PaymentMethodHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "medio de pago eliminado", nil)
}
