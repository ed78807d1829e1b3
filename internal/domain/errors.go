package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrPackNotFound      = errors.New("pack no encontrado")
	ErrExpenseNotFound   = errors.New("gasto no encontrado")
	ErrOrderNotFound     = errors.New("orden no encontrada")
	ErrItemTypeNotFound  = errors.New("tipo de item no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrRelationExists    = errors.New("la relación ya existe")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidItemKind   = errors.New("tipo de item inválido")
)
