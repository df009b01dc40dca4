package repository

import "github.com/zerograu/comisiones-api/internal/domain/entity"

// SellerDirectory resuelve un login (sin distinguir mayúsculas) a su vendedor.
// Devuelve domain.ErrUnknownSeller si el login no existe.
type SellerDirectory interface {
	Lookup(login string) (*entity.Seller, error)
}
