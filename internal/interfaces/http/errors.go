package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/estoque-api/internal/application/dto"
	"github.com/tu-usuario/estoque-api/internal/domain"
)

// respondError traduce errores de dominio a códigos HTTP. Todo lo que no sea
// un error de dominio conocido se responde como 500 sin filtrar detalles.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return respond(c, fiber.StatusBadRequest, "invalid_input", err)
	case errors.Is(err, domain.ErrUnauthorized):
		return respond(c, fiber.StatusUnauthorized, "unauthorized", err)
	case errors.Is(err, domain.ErrForbidden):
		return respond(c, fiber.StatusForbidden, "forbidden", err)
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrMovementNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNotFound):
		return respond(c, fiber.StatusNotFound, "not_found", err)
	case errors.Is(err, domain.ErrDuplicate):
		return respond(c, fiber.StatusConflict, "duplicate", err)
	case errors.Is(err, domain.ErrLastAdmin):
		return respond(c, fiber.StatusConflict, "last_admin", err)
	case errors.Is(err, domain.ErrConflict):
		return respond(c, fiber.StatusConflict, "conflict", err)
	case errors.Is(err, domain.ErrInsufficientStock):
		return respond(c, fiber.StatusUnprocessableEntity, "insufficient_stock", err)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "internal_error",
			Message: "error interno del servidor",
		})
	}
}

func respond(c *fiber.Ctx, status int, code string, err error) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
