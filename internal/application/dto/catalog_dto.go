package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateCategoryRequest entrada parcial para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatePaymentMethodRequest entrada para crear un medio de pago.
type CreatePaymentMethodRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdatePaymentMethodRequest entrada parcial para un medio de pago.
type UpdatePaymentMethodRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

// PaymentMethodResponse salida de un medio de pago.
type PaymentMethodResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateItemTypeRequest entrada para registrar un tipo de item.
// Name debe ser uno de los kinds del enum cerrado: product | pack.
type CreateItemTypeRequest struct {
	Name string `json:"name" validate:"required,oneof=product pack"`
}

// UpdateItemTypeRequest reemplazo completo de un tipo de item (PUT).
type UpdateItemTypeRequest struct {
	Name string `json:"name" validate:"required,oneof=product pack"`
}

// ItemTypeResponse salida de un tipo de item.
type ItemTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateProductCategoryRequest entrada para asociar producto y categoría.
type CreateProductCategoryRequest struct {
	ProductID  string `json:"product_id" validate:"required,uuid4"`
	CategoryID string `json:"category_id" validate:"required,uuid4"`
}

// BatchProductCategoryRequest asocia un producto a varias categorías.
type BatchProductCategoryRequest struct {
	ProductID   string   `json:"product_id" validate:"required,uuid4"`
	CategoryIDs []string `json:"category_ids" validate:"required,min=1,dive,uuid4"`
}

// UpdateProductCategoryRequest mueve una relación (old → new).
type UpdateProductCategoryRequest struct {
	OldProductID  string `json:"old_product_id" validate:"required,uuid4"`
	OldCategoryID string `json:"old_category_id" validate:"required,uuid4"`
	NewProductID  string `json:"new_product_id" validate:"required,uuid4"`
	NewCategoryID string `json:"new_category_id" validate:"required,uuid4"`
}

// ProductCategoryResponse salida de una relación producto-categoría.
type ProductCategoryResponse struct {
	ProductID  string    `json:"product_id"`
	CategoryID string    `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}
