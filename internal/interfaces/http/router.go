package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jsanmartinc/puntoventa-api/internal/application/expenses"
	"github.com/jsanmartinc/puntoventa-api/internal/application/inventory"
	"github.com/jsanmartinc/puntoventa-api/internal/application/sales"
	"github.com/jsanmartinc/puntoventa-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC         *usecase.ProductUseCase
	CategoryUC        *usecase.CategoryUseCase
	ProductCategoryUC *usecase.ProductCategoryUseCase
	PackUC            *usecase.PackUseCase
	PackItemUC        *usecase.PackItemUseCase
	PaymentMethodUC   *usecase.PaymentMethodUseCase
	ItemTypeUC        *usecase.ItemTypeUseCase
	StockUC           *inventory.StockUseCase
	PackStockUC       *inventory.PackStockUseCase
	ExpenseUC         *expenses.ExpenseUseCase
	ExpenseItemUC     *expenses.ExpenseItemUseCase
	OrderUC           *sales.OrderUseCase
	DetailOrderUC     *sales.DetailOrderUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Patch("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Relación producto-categoría. Las rutas estáticas (/batch) van antes que
	// las parametrizadas para que fiber no las capture como parámetro.
	prodCat := api.Group("/products-category")
	prodCatHandler := NewProductCategoryHandler(deps.ProductCategoryUC)
	prodCat.Post("/batch", prodCatHandler.CreateBatch)
	prodCat.Patch("/batch", prodCatHandler.ReplaceBatch)
	prodCat.Post("/", prodCatHandler.Create)
	prodCat.Patch("/", prodCatHandler.Update)
	prodCat.Get("/product/:productId", prodCatHandler.ListByProduct)
	prodCat.Get("/category/:categoryId", prodCatHandler.ListByCategory)
	prodCat.Delete("/:productId/:categoryId", prodCatHandler.Delete)

	// Packs (los listados embeben pack_items)
	packs := api.Group("/packs")
	packHandler := NewPackHandler(deps.PackUC)
	packs.Post("/", packHandler.Create)
	packs.Get("/", packHandler.List)
	packs.Get("/:id", packHandler.GetByID)
	packs.Patch("/:id", packHandler.Update)
	packs.Delete("/:id", packHandler.Delete)

	// Pack items (POST con upsert-merge)
	packItems := api.Group("/pack-items")
	packItemHandler := NewPackItemHandler(deps.PackItemUC)
	packItems.Post("/", packItemHandler.Create)
	packItems.Get("/", packItemHandler.List)
	packItems.Get("/pack/:packId", packItemHandler.ListByPack)
	packItems.Get("/:id", packItemHandler.GetByID)
	packItems.Put("/:id", packItemHandler.Replace)
	packItems.Delete("/:id", packItemHandler.Delete)

	// Payment methods
	payments := api.Group("/payment-methods")
	paymentHandler := NewPaymentMethodHandler(deps.PaymentMethodUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Patch("/:id", paymentHandler.Update)
	payments.Delete("/:id", paymentHandler.Delete)

	// Item types (registro del enum product | pack)
	itemTypes := api.Group("/item-types")
	itemTypeHandler := NewItemTypeHandler(deps.ItemTypeUC)
	itemTypes.Post("/", itemTypeHandler.Create)
	itemTypes.Get("/", itemTypeHandler.List)
	itemTypes.Get("/:id", itemTypeHandler.GetByID)
	itemTypes.Put("/:id", itemTypeHandler.Replace)
	itemTypes.Delete("/:id", itemTypeHandler.Delete)

	// Inventario: libro de stock y consumo de packs
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.PackStockUC)
	inv.Get("/products/:id/stock", inventoryHandler.GetProductStock)
	inv.Post("/products/:id/sell", inventoryHandler.SellProduct)
	inv.Get("/packs/:id/availability", inventoryHandler.PackAvailability)
	inv.Post("/packs/:id/consume", inventoryHandler.ConsumePack)

	// Expenses
	expensesGroup := api.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC, deps.ExpenseItemUC)
	expensesGroup.Post("/", expenseHandler.Create)
	expensesGroup.Get("/", expenseHandler.List)
	expensesGroup.Get("/:id", expenseHandler.GetByID)
	expensesGroup.Get("/:id/items", expenseHandler.ListItems)
	expensesGroup.Delete("/:id", expenseHandler.Delete)

	// Expense items (alta y baja mueven stock)
	expenseItems := api.Group("/expense-items")
	expenseItemHandler := NewExpenseItemHandler(deps.ExpenseItemUC)
	expenseItems.Post("/", expenseItemHandler.Create)
	expenseItems.Delete("/:id", expenseItemHandler.Delete)

	// Orders
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Delete("/:id", orderHandler.Delete)

	// Detail orders
	detailOrders := api.Group("/detail-orders")
	detailOrderHandler := NewDetailOrderHandler(deps.DetailOrderUC)
	detailOrders.Post("/", detailOrderHandler.Create)
	detailOrders.Get("/", detailOrderHandler.List)
	detailOrders.Get("/:id", detailOrderHandler.GetByID)
	detailOrders.Delete("/:id", detailOrderHandler.Delete)
}
