package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/entity"
	"github.com/jsanmartinc/puntoventa-api/internal/domain/repository"
)

// PackStockUseCase trata un pack como una receta de (producto, cantidad por
// pack) y aplica las operaciones del libro de stock transitivamente sobre
// todos sus constituyentes.
type PackStockUseCase struct {
	txRunner     TxRunner
	packRepo     repository.PackRepository
	packItemRepo repository.PackItemRepository
	stockRepo    repository.StockRepository
}

// NewPackStockUseCase construye el caso de uso.
func NewPackStockUseCase(
	txRunner TxRunner,
	packRepo repository.PackRepository,
	packItemRepo repository.PackItemRepository,
	stockRepo repository.StockRepository,
) *PackStockUseCase {
	return &PackStockUseCase{
		txRunner:     txRunner,
		packRepo:     packRepo,
		packItemRepo: packItemRepo,
		stockRepo:    stockRepo,
	}
}

// Expand retorna las líneas de receta del pack. ErrPackNotFound si el pack
// no existe. Un pack sin líneas retorna lista vacía, no error.
func (uc *PackStockUseCase) Expand(packID string) ([]*entity.PackItem, error) {
	exists, err := uc.packRepo.Exists(packID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrPackNotFound
	}
	return uc.packItemRepo.ListByPack(packID)
}

// HasSufficientStock verifica que cada producto de la receta tenga al menos
// packQty × cantidadPorPack unidades. Retorna false al primer faltante o
// producto inexistente. Un pack sin líneas pasa trivialmente: la decisión de
// venderlo es del caller.
func (uc *PackStockUseCase) HasSufficientStock(packID string, packQty int) (bool, error) {
	if packQty < 1 {
		return false, domain.ErrInvalidInput
	}
	items, err := uc.Expand(packID)
	if err != nil {
		return false, err
	}
	for _, item := range items {
		required := decimal.NewFromInt(int64(packQty) * int64(item.Quantity))
		current, found, err := uc.stockRepo.Get(item.ProductID)
		if err != nil {
			return false, err
		}
		if !found || current.LessThan(required) {
			return false, nil
		}
	}
	return true, nil
}

// Consume descuenta el stock de todos los constituyentes del pack dentro de
// una sola transacción: cada línea es un decremento condicional atómico y
// cualquier faltante revierte la operación completa.
func (uc *PackStockUseCase) Consume(ctx context.Context, packID string, packQty int) error {
	if packQty < 1 {
		return domain.ErrInvalidInput
	}
	exists, err := uc.packRepo.Exists(packID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrPackNotFound
	}
	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		packItemRepo repository.PackItemRepository,
		_ repository.ExpenseItemRepository,
	) error {
		items, err := packItemRepo.ListByPack(packID)
		if err != nil {
			return err
		}
		for _, item := range items {
			required := decimal.NewFromInt(int64(packQty) * int64(item.Quantity))
			if err := stockRepo.ConsumeIfAvailable(item.ProductID, required); err != nil {
				return err
			}
		}
		return nil
	})
}
