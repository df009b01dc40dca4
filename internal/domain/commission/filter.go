package commission

import "github.com/zerograu/comisiones-api/internal/domain/entity"

// FilterBySeller devuelve, en el mismo orden, los registros cuyo código de vendedor
// coincide con sellerCode comparando las formas canónicas de ambos.
// Sin coincidencias devuelve un slice vacío (no nil): período sin ventas.
func FilterBySeller(records []entity.CommissionRecord, sellerCode string) []entity.CommissionRecord {
	target := CanonicalCode(sellerCode)
	out := make([]entity.CommissionRecord, 0, len(records))
	for _, r := range records {
		if CanonicalCode(r.SellerCode) == target {
			out = append(out, r)
		}
	}
	return out
}
