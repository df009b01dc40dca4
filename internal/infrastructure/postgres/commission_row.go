package postgres

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zerograu/comisiones-api/internal/domain"
	"github.com/zerograu/comisiones-api/internal/domain/entity"
)

// rawCommissionRow fila tal como llega de la base; cualquier campo puede ser NULL.
type rawCommissionRow struct {
	SellerCode *string
	DueAt      *time.Time
	VoucherID  *string
	Value      *string
	NetValue   *string
}

// toEntity valida la fila y la convierte. loc reinterpreta la hora de pared de DueAt.
func (raw rawCommissionRow) toEntity(loc *time.Location) (entity.CommissionRecord, error) {
	voucher := deref(raw.VoucherID)
	if strings.TrimSpace(voucher) == "" {
		return entity.CommissionRecord{}, fmt.Errorf("fila sin número de cupón: %w", domain.ErrMalformedValue)
	}
	if raw.DueAt == nil {
		return entity.CommissionRecord{}, fmt.Errorf("cupón %s sin fecha de vencimiento: %w", voucher, domain.ErrMalformedValue)
	}
	gross, err := parseAmount(raw.Value)
	if err != nil {
		return entity.CommissionRecord{}, fmt.Errorf("cupón %s, valor: %w", voucher, err)
	}
	net, err := parseAmount(raw.NetValue)
	if err != nil {
		return entity.CommissionRecord{}, fmt.Errorf("cupón %s, valor líquido: %w", voucher, err)
	}
	d := *raw.DueAt
	return entity.CommissionRecord{
		SellerCode: strings.TrimSpace(deref(raw.SellerCode)),
		DueAt:      time.Date(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), loc),
		VoucherID:  strings.TrimSpace(voucher),
		GrossValue: gross,
		NetValue:   net,
	}, nil
}

// parseAmount exige un decimal no negativo.
func parseAmount(s *string) (decimal.Decimal, error) {
	if s == nil {
		return decimal.Zero, fmt.Errorf("NULL: %w", domain.ErrMalformedValue)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q no es numérico: %w", *s, domain.ErrMalformedValue)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%q es negativo: %w", *s, domain.ErrMalformedValue)
	}
	return d, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
