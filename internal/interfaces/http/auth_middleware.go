package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/zerograu/comisiones-api/internal/application/dto"
	"github.com/zerograu/comisiones-api/pkg/jwt"
)

// Locals keys para login y código de vendedor en Fiber.
const (
	LocalLogin      = "login"
	LocalSellerCode = "seller_code"
)

// AuthMiddleware valida el Bearer Token JWT y extrae login y código de vendedor a c.Locals.
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
		login, sellerCode, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalLogin, login)
		c.Locals(LocalSellerCode, sellerCode)
		return c.Next()
	}
}

// GetLogin devuelve el login del contexto (después del middleware de auth).
func GetLogin(c *fiber.Ctx) string {
	return localString(c, LocalLogin)
}

// GetSellerCode devuelve el código de vendedor del token.
func GetSellerCode(c *fiber.Ctx) string {
	return localString(c, LocalSellerCode)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
