package repository

import (
	"context"
	"time"

	"github.com/zerograu/comisiones-api/internal/domain/entity"
)

// CommissionRecordSource puerto de lectura de la tabla de comisiones.
// El rango es cerrado en ambos extremos y no se garantiza ningún orden.
// Los adaptadores validan los montos en el borde: un valor no numérico
// se reporta como domain.ErrMalformedValue.
type CommissionRecordSource interface {
	FindByDueRange(ctx context.Context, start, end time.Time) ([]entity.CommissionRecord, error)
}
