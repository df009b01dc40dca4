package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUnknownSeller      = errors.New("vendedor no encontrado")
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")
	ErrMalformedValue     = errors.New("valor no numérico en el registro de comisión")
	ErrInvalidWindow      = errors.New("rango de fechas inválido")
	ErrInvalidInput       = errors.New("entrada inválida")
)
