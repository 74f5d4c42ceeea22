package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

// LocalUserAccountID key del ID de cuenta en c.Locals (después del middleware).
const LocalUserAccountID = "user_account_id"

// AuthMiddleware valida el Bearer Token JWT y deja el ID de la cuenta en
// c.Locals. Toda ruta de catálogo resuelve el tenant desde aquí, nunca desde
// un parámetro del request.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userAccountID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserAccountID, userAccountID)
		return c.Next()
	}
}

// GetUserAccountID devuelve el ID de la cuenta del contexto (después del
// middleware de auth).
func GetUserAccountID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserAccountID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
