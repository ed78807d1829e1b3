package dto

import "github.com/shopspring/decimal"

// SellRequest cantidad a descontar en una venta directa de producto.
type SellRequest struct {
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
}

// StockResponse stock actual de un producto.
type StockResponse struct {
	ProductID string          `json:"product_id"`
	Stock     decimal.Decimal `json:"stock"`
}

// ConsumePackRequest cantidad de packs a consumir.
type ConsumePackRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// PackAvailabilityResponse resultado de la verificación de suficiencia.
type PackAvailabilityResponse struct {
	PackID    string `json:"pack_id"`
	Quantity  int    `json:"quantity"`
	Available bool   `json:"available"`
}
