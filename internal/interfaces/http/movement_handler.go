package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/estoque-api/internal/application/dto"
	"github.com/tu-usuario/estoque-api/internal/application/ledger"
	"github.com/tu-usuario/estoque-api/internal/domain"
)

// MovementHandler endpoints del ledger de movimientos.
type MovementHandler struct {
	uc *ledger.UseCase
}

func NewMovementHandler(uc *ledger.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Register POST /api/movements
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	mov, err := h.uc.RegisterMovement(c.Context(), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mov)
}

// List GET /api/movements
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	resp, err := h.uc.ListMovements(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ListByProduct GET /api/movements/product/:id?type=entrada|saida
func (h *MovementHandler) ListByProduct(c *fiber.Ctx) error {
	resp, err := h.uc.ListMovementsForProduct(c.Context(), c.Params("id"), c.Query("type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Reverse DELETE /api/movements/:id
func (h *MovementHandler) Reverse(c *fiber.Ctx) error {
	if err := h.uc.ReverseMovement(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
