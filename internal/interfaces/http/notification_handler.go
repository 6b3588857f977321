package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/estoque-api/internal/application/alerts"
	"github.com/tu-usuario/estoque-api/internal/application/dto"
	"github.com/tu-usuario/estoque-api/internal/domain"
)

// NotificationHandler endpoints de la bandeja de notificaciones.
type NotificationHandler struct {
	engine *alerts.Engine
}

func NewNotificationHandler(engine *alerts.Engine) *NotificationHandler {
	return &NotificationHandler{engine: engine}
}

// List GET /api/notifications
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	resp, err := h.engine.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// UnreadCount GET /api/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.engine.UnreadCount(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"unread": count})
}

// MarkRead PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.engine.MarkRead(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearRead DELETE /api/notifications/read
func (h *NotificationHandler) ClearRead(c *fiber.Ctx) error {
	if err := h.engine.ClearRead(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CheckInactivity POST /api/notifications/inactivity-check
func (h *NotificationHandler) CheckInactivity(c *fiber.Ctx) error {
	emitted, err := h.engine.CheckInactivity(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"emitted": emitted})
}
