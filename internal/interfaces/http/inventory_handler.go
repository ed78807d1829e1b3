package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/application/inventory"
	"github.com/jsanmartinc/puntoventa-api/pkg/validator"
)

// InventoryHandler expone el libro de stock: consulta y venta directa de un
// producto, y suficiencia/consumo de packs como receta.
type InventoryHandler struct {
	stockUC *inventory.StockUseCase
	packUC  *inventory.PackStockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stockUC *inventory.StockUseCase, packUC *inventory.PackStockUseCase) *InventoryHandler {
	return &InventoryHandler{stockUC: stockUC, packUC: packUC}
}

// GetProductStock GET /api/v1/inventory/products/:id/stock
func (h *InventoryHandler) GetProductStock(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	qty, err := h.stockUC.Get(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "stock del producto", dto.StockResponse{ProductID: id, Stock: qty})
}

// SellProduct POST /api/v1/inventory/products/:id/sell
func (h *InventoryHandler) SellProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	var in dto.SellRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return respondValidation(c, errs)
	}
	if err := h.stockUC.SellProduct(id, in.Quantity); err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "venta de producto aplicada", nil)
}

// PackAvailability GET /api/v1/inventory/packs/:id/availability?quantity=n
func (h *InventoryHandler) PackAvailability(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	qty := c.QueryInt("quantity", 1)
	ok, err := h.packUC.HasSufficientStock(id, qty)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "disponibilidad del pack", dto.PackAvailabilityResponse{
		PackID:    id,
		Quantity:  qty,
		Available: ok,
	})
}

// ConsumePack POST /api/v1/inventory/packs/:id/consume
func (h *InventoryHandler) ConsumePack(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validator.IsUUID(id) {
		return respondBadRequest(c, "id inválido", nil)
	}
	var in dto.ConsumePackRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return respondValidation(c, errs)
	}
	if err := h.packUC.Consume(c.Context(), id, in.Quantity); err != nil {
		return respondDomainError(c, err)
	}
	return respondOK(c, "consumo del pack aplicado", nil)
}
