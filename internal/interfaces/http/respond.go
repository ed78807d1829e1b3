package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jsanmartinc/puntoventa-api/internal/application/dto"
	"github.com/jsanmartinc/puntoventa-api/internal/domain"
	"github.com/jsanmartinc/puntoventa-api/pkg/validator"
)

// Helpers del sobre uniforme { status, message, data }. Todas las respuestas
// del API, éxito o error, pasan por aquí.

func respondOK(c *fiber.Ctx, message string, data any) error {
	return c.JSON(dto.Response{Status: dto.StatusSuccess, Message: message, Data: data})
}

func respondCreated(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Status: dto.StatusSuccess, Message: message, Data: data,
	})
}

// respondList aplica la convención que el frontend de administración
// espera: una colección vacía se reporta como 404 con data: [], no como 200.
func respondList[T any](c *fiber.Ctx, message string, items []T) error {
	if len(items) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.Response{
			Status: dto.StatusError, Message: "no hay registros", Data: []T{},
		})
	}
	return respondOK(c, message, items)
}

func respondNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.Response{
		Status: dto.StatusError, Message: message, Data: nil,
	})
}

func respondBadRequest(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
		Status: dto.StatusError, Message: message, Data: data,
	})
}

func respondInvalidBody(c *fiber.Ctx) error {
	return respondBadRequest(c, "cuerpo de la petición inválido", nil)
}

func respondValidation(c *fiber.Ctx, errs []validator.FieldError) error {
	return respondBadRequest(c, "validación fallida", errs)
}

// respondDomainError mapea errores de dominio a status HTTP conservando el
// mensaje específico del error (un not-found anidado sigue siendo 404, no
// colapsa en un 400 genérico). Lo demás es 500 con mensaje genérico.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrPackNotFound),
		errors.Is(err, domain.ErrExpenseNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrItemTypeNotFound):
		return respondNotFound(c, err.Error())
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidItemKind),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrRelationExists),
		errors.Is(err, domain.ErrInsufficientStock):
		return respondBadRequest(c, err.Error(), nil)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Response{
			Status: dto.StatusError, Message: "error interno del servidor", Data: nil,
		})
	}
}
