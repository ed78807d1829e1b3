package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jsanmartinc/puntoventa-api/internal/application/expenses"
	"github.com/jsanmartinc/puntoventa-api/internal/application/inventory"
	"github.com/jsanmartinc/puntoventa-api/internal/application/sales"
	"github.com/jsanmartinc/puntoventa-api/internal/application/usecase"
	"github.com/jsanmartinc/puntoventa-api/internal/infrastructure/postgres"
	httpRouter "github.com/jsanmartinc/puntoventa-api/internal/interfaces/http"
	"github.com/jsanmartinc/puntoventa-api/pkg/config"
	"github.com/jsanmartinc/puntoventa-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	prodCatRepo := postgres.NewProductCategoryRepository(pool)
	packRepo := postgres.NewPackRepository(pool)
	packItemRepo := postgres.NewPackItemRepository(pool)
	paymentRepo := postgres.NewPaymentMethodRepository(pool)
	itemTypeRepo := postgres.NewItemTypeRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	expenseItemRepo := postgres.NewExpenseItemRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	detailOrderRepo := postgres.NewDetailOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	prodCatUC := usecase.NewProductCategoryUseCase(prodCatRepo, productRepo, categoryRepo)
	packUC := usecase.NewPackUseCase(packRepo)
	packItemUC := usecase.NewPackItemUseCase(packItemRepo, packRepo, productRepo)
	paymentUC := usecase.NewPaymentMethodUseCase(paymentRepo)
	itemTypeUC := usecase.NewItemTypeUseCase(itemTypeRepo)

	stockRepo := postgres.NewStockRepository(pool)
	stockUC := inventory.NewStockUseCase(stockRepo)
	packStockUC := inventory.NewPackStockUseCase(txRunner, packRepo, packItemRepo, stockRepo)

	expenseUC := expenses.NewExpenseUseCase(expenseRepo, paymentRepo)
	expenseItemUC := expenses.NewExpenseItemUseCase(txRunner, expenseRepo, expenseItemRepo, productRepo)

	registry := sales.NewItemRegistry(itemTypeRepo, productRepo, packRepo)
	orderUC := sales.NewOrderUseCase(orderRepo, paymentRepo)
	detailOrderUC := sales.NewDetailOrderUseCase(detailOrderRepo, orderRepo, registry)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PuntoVenta API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:         productUC,
		CategoryUC:        categoryUC,
		ProductCategoryUC: prodCatUC,
		PackUC:            packUC,
		PackItemUC:        packItemUC,
		PaymentMethodUC:   paymentUC,
		ItemTypeUC:        itemTypeUC,
		StockUC:           stockUC,
		PackStockUC:       packStockUC,
		ExpenseUC:         expenseUC,
		ExpenseItemUC:     expenseItemUC,
		OrderUC:           orderUC,
		DetailOrderUC:     detailOrderUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
