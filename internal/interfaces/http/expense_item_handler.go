package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/application/expenses"
	"github.com/jsanmartinc/puntoventa-api/pkg/validator"
)

// ExpenseItemHandler alta y baja de líneas de compra. Ambas operaciones
// tienen efecto sobre el stock del producto (suma en el alta, reversa en la
// baja) dentro de una misma transacción.
type ExpenseItemHandler struct {
	uc *expenses.ExpenseItemUseCase
}

// NewExpenseItemHandler construye el handler.
func NewExpenseItemHandler(uc *expenses.ExpenseItemUseCase) *ExpenseItemHandler {
	return &ExpenseItemHandler{uc: uc}
}

// Create POST /api/v1/expense-items
func (h *ExpenseItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return respondValidation(c, errs)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondCreated(c, "línea de compra registrada", out)
}

// Delete DELETE /api/v1/expense-items/:id
func (h *ExpenseItemHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "línea de compra eliminada", nil)
}
