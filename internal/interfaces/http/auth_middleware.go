package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/estoque-api/internal/application/dto"
	"github.com/tu-usuario/estoque-api/internal/domain/entity"
	"github.com/tu-usuario/estoque-api/pkg/jwt"
)

const (
	localUserID      = "user_id"
	localUsername    = "username"
	localAccessLevel = "access_level"
)

// AuthMiddleware valida el Bearer token y deja la identidad en los locals del
// request.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "unauthorized",
				Message: "token no provisto",
			})
		}
		userID, username, accessLevel, err := jwt.Parse(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "unauthorized",
				Message: "token inválido o expirado",
			})
		}
		c.Locals(localUserID, userID)
		c.Locals(localUsername, username)
		c.Locals(localAccessLevel, accessLevel)
		return c.Next()
	}
}

// RequireLevel exige un nivel de acceso mínimo (operador < supervisor <
// administrador). Debe ir después de AuthMiddleware.
func RequireLevel(min string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !entity.LevelAtLeast(GetAccessLevel(c), min) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "forbidden",
				Message: "nivel de acceso insuficiente",
			})
		}
		return c.Next()
	}
}

// GetUserID devuelve el ID del usuario autenticado.
func GetUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}

// GetUsername devuelve el username del usuario autenticado.
func GetUsername(c *fiber.Ctx) string {
	name, _ := c.Locals(localUsername).(string)
	return name
}

// GetAccessLevel devuelve el nivel de acceso del usuario autenticado.
func GetAccessLevel(c *fiber.Ctx) string {
	level, _ := c.Locals(localAccessLevel).(string)
	return level
}
