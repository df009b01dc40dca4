package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que indican una tabla de comisiones mal configurada.
const (
	sqlStateUndefinedTable  = "42P01"
	sqlStateUndefinedColumn = "42703"
)

// pgErrorCode devuelve el SQLSTATE de un error de PostgreSQL, o "" si no lo es.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isSchemaMismatch verifica si la consulta falló por tabla o columna inexistente.
func isSchemaMismatch(err error) bool {
	switch pgErrorCode(err) {
	case sqlStateUndefinedTable, sqlStateUndefinedColumn:
		return true
	}
	return false
}
