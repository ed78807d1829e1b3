package entity

import "time"

// Category representa una categoría de productos.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductCategory relación muchos-a-muchos entre Product y Category
// (clave compuesta product_id + category_id).
type ProductCategory struct {
	ProductID  string
	CategoryID string
	CreatedAt  time.Time
}
