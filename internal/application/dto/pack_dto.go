package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePackRequest entrada para crear un pack.
type CreatePackRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"max=500"`
	Price       decimal.Decimal `json:"price"`
	Picture     string          `json:"picture" validate:"omitempty,uri"`
	Active      *bool           `json:"active"`
}

// UpdatePackRequest entrada parcial para actualizar un pack.
type UpdatePackRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Price       *decimal.Decimal `json:"price"`
	Picture     *string          `json:"picture" validate:"omitempty,uri"`
	Active      *bool            `json:"active"`
}

// PackResponse salida de un pack con sus líneas embebidas.
type PackResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       decimal.Decimal    `json:"price"`
	Picture     string             `json:"picture,omitempty"`
	Active      bool               `json:"active"`
	Items       []PackItemResponse `json:"pack_items"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// CreatePackItemRequest entrada para agregar una línea de receta.
// Si ya existe una línea para (pack, producto) se hace merge de cantidades.
type CreatePackItemRequest struct {
	PackID    string `json:"pack_id" validate:"required,uuid4"`
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// UpdatePackItemRequest reemplazo de la cantidad de una línea (PUT).
type UpdatePackItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// PackItemResponse salida de una línea de receta.
type PackItemResponse struct {
	ID        string    `json:"id"`
	PackID    string    `json:"pack_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
