package entity

import "time"

// ItemKind es el discriminante cerrado de referencias polimórficas a items
// vendibles: la pareja (item_type, item_id) se modela como enum con switch
// explícito en cada punto de consumo, nunca como strings sueltos.
type ItemKind string

const (
	KindProduct ItemKind = "product"
	KindPack    ItemKind = "pack"
)

// Valid reporta si el kind pertenece al enum cerrado.
func (k ItemKind) Valid() bool {
	return k == KindProduct || k == KindPack
}

// ParseItemKind convierte el nombre almacenado en el registro de tipos.
func ParseItemKind(s string) (ItemKind, bool) {
	switch ItemKind(s) {
	case KindProduct:
		return KindProduct, true
	case KindPack:
		return KindPack, true
	}
	return "", false
}

// ItemType es la fila del registro de tipos de item: asocia un identificador
// con un kind semántico (product | pack).
type ItemType struct {
	ID        string
	Name      string // "product" | "pack"
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemRef es la referencia tipada a un item vendible (producto o pack).
type ItemRef struct {
	Kind ItemKind
	ID   string
}
