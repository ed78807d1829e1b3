package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/application/expenses"
	"github.com/jsanmartinc/puntoventa-api/pkg/validator"
)

// ExpenseHandler maneja los gastos (eventos de compra). Las líneas de un
// gasto se consultan aquí; su alta y baja van por ExpenseItemHandler.
type ExpenseHandler struct {
	uc     *expenses.ExpenseUseCase
	itemUC *expenses.ExpenseItemUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *expenses.ExpenseUseCase, itemUC *expenses.ExpenseItemUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, itemUC: itemUC}
}

// Create POST /api/v1/expenses
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
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
	return respondCreated(c, "gasto registrado", out)
}

// List GET /api/v1/expenses
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, "gastos", out)
}

// GetByID GET /api/v1/expenses/:id
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "gasto no encontrado")
	}
	return respondOK(c, "gasto", out)
}

// ListItems GET /api/v1/expenses/:id/items
func (h *ExpenseHandler) ListItems(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	out, err := h.itemUC.ListByExpense(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, "líneas del gasto", out)
}

// Delete DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "gasto eliminado", nil)
}
