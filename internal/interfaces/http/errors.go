package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/zerograu/comisiones-api/internal/application/dto"
	"github.com/zerograu/comisiones-api/internal/domain"
)

// writeError traduce errores de dominio a status + dto.ErrorResponse.
// Lo que no se reconoce es 500 INTERNAL y no expone el detalle.
func writeError(c *fiber.Ctx, err error) error {
	status, body := mapError(err)
	return c.Status(status).JSON(body)
}

func mapError(err error) (int, dto.ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrInvalidWindow):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_WINDOW", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"}
	case errors.Is(err, domain.ErrUnknownSeller):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "UNKNOWN_SELLER", Message: "el vendedor no está registrado"}
	case errors.Is(err, domain.ErrMalformedValue):
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "MALFORMED_DATA", Message: err.Error()}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
	}
}
