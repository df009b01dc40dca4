package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/zerograu/comisiones-api/internal/domain/entity"
	"github.com/zerograu/comisiones-api/internal/domain/repository"
)

var _ repository.CommissionRecordSource = (*CommissionRepo)(nil)

// CommissionRepo lectura de la tabla de comisiones.
//
// Columnas esperadas (equivalentes a las del sistema de caja):
//
//	codigo_vendedor       código del vendedor (texto o numérico)
//	data_hora_vencimento  TIMESTAMP sin zona, hora local del comercio
//	numero_cupom          número de cupón
//	valor                 valor de la venta
//	valor_liquido         valor líquido
type CommissionRepo struct {
	q     Querier
	table string
	loc   *time.Location
}

// NewCommissionRepository construye el adaptador. table admite "esquema.tabla";
// loc es la zona en que se interpretan las fechas sin zona de la tabla.
func NewCommissionRepository(q Querier, table string, loc *time.Location) *CommissionRepo {
	if loc == nil {
		loc = time.Local
	}
	return &CommissionRepo{q: q, table: table, loc: loc}
}

// FindByDueRange devuelve los registros con vencimiento en [start, end].
// Los montos se leen como texto y se validan aquí; una fila inválida aborta la
// consulta con domain.ErrMalformedValue.
func (r *CommissionRepo) FindByDueRange(ctx context.Context, start, end time.Time) ([]entity.CommissionRecord, error) {
	query := buildSelectByDueRange(r.table)

	// La columna no tiene zona: se envía la hora de pared local.
	rows, err := r.q.Query(ctx, query, wallClock(start.In(r.loc)), wallClock(end.In(r.loc)))
	if err != nil {
		if isSchemaMismatch(err) {
			return nil, fmt.Errorf("commissions.FindByDueRange: tabla %q o columnas inexistentes: %w", r.table, err)
		}
		return nil, fmt.Errorf("commissions.FindByDueRange: %w", err)
	}
	defer rows.Close()

	records := []entity.CommissionRecord{}
	for rows.Next() {
		var raw rawCommissionRow
		if err := rows.Scan(&raw.SellerCode, &raw.DueAt, &raw.VoucherID, &raw.Value, &raw.NetValue); err != nil {
			return nil, fmt.Errorf("commissions.FindByDueRange scan: %w", err)
		}
		rec, err := raw.toEntity(r.loc)
		if err != nil {
			return nil, fmt.Errorf("commissions.FindByDueRange: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("commissions.FindByDueRange rows: %w", err)
	}
	return records, nil
}

// buildSelectByDueRange arma la consulta con el nombre de tabla escapado.
func buildSelectByDueRange(table string) string {
	ident := pgx.Identifier(strings.Split(table, "."))
	return `
	SELECT
	    codigo_vendedor::TEXT,
	    data_hora_vencimento,
	    numero_cupom::TEXT,
	    valor::TEXT,
	    valor_liquido::TEXT
	FROM ` + ident.Sanitize() + `
	WHERE data_hora_vencimento >= $1
	  AND data_hora_vencimento <= $2`
}

// wallClock conserva la hora de pared y descarta la zona.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
