package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encabezados de la exportación de la tabla de comisiones.
const (
	colSeller  = "Código Vendedor"
	colDueAt   = "Data/Hora Vencimento"
	colVoucher = "Nº Cupom"
	colValue   = "Valor"
	colNet     = "ValorLiquido"
)

var timestampLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
}

type seedRow struct {
	line     int
	seller   string
	dueAt    time.Time
	voucher  string
	value    decimal.Decimal
	netValue decimal.Decimal
}

type rowError struct {
	line int
	err  error
}

func (e rowError) Error() string {
	return fmt.Sprintf("línea %d: %v", e.line, e.err)
}

// readExport decodifica la exportación Windows-1252 separada por ';'.
// Las filas inválidas se devuelven aparte y no detienen la lectura.
func readExport(r io.Reader) ([]seedRow, []rowError, error) {
	cr := csv.NewReader(transform.NewReader(r, charmap.Windows1252.NewDecoder()))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("leer encabezado: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, nil, err
	}

	var rows []seedRow
	var bad []rowError
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			bad = append(bad, rowError{line: line, err: err})
			continue
		}
		if isBlank(rec) {
			continue
		}
		row, err := parseRow(rec, idx)
		if err != nil {
			bad = append(bad, rowError{line: line, err: err})
			continue
		}
		row.line = line
		rows = append(rows, row)
	}
	return rows, bad, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
		for _, want := range []string{colSeller, colDueAt, colVoucher, colValue, colNet} {
			if strings.EqualFold(h, want) {
				idx[want] = i
			}
		}
	}
	for _, want := range []string{colSeller, colDueAt, colVoucher, colValue, colNet} {
		if _, ok := idx[want]; !ok {
			return nil, fmt.Errorf("falta la columna %q", want)
		}
	}
	return idx, nil
}

func parseRow(rec []string, idx map[string]int) (seedRow, error) {
	field := func(name string) (string, error) {
		i := idx[name]
		if i >= len(rec) {
			return "", fmt.Errorf("columna %q ausente", name)
		}
		return strings.TrimSpace(rec[i]), nil
	}

	var row seedRow
	var err error
	if row.seller, err = field(colSeller); err != nil {
		return row, err
	}
	if row.seller == "" {
		return row, fmt.Errorf("%s vacío", colSeller)
	}
	if row.voucher, err = field(colVoucher); err != nil {
		return row, err
	}
	if row.voucher == "" {
		return row, fmt.Errorf("%s vacío", colVoucher)
	}

	raw, err := field(colDueAt)
	if err != nil {
		return row, err
	}
	if row.dueAt, err = parseTimestamp(raw); err != nil {
		return row, err
	}

	if raw, err = field(colValue); err != nil {
		return row, err
	}
	if row.value, err = parseBRAmount(raw); err != nil {
		return row, fmt.Errorf("%s: %w", colValue, err)
	}
	if raw, err = field(colNet); err != nil {
		return row, err
	}
	if row.netValue, err = parseBRAmount(raw); err != nil {
		return row, fmt.Errorf("%s: %w", colNet, err)
	}
	return row, nil
}

// parseBRAmount interpreta montos con coma decimal y punto de miles ("1.234,56").
func parseBRAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if s == "" {
		return decimal.Zero, fmt.Errorf("monto vacío")
	}
	if !validThousands(s) {
		return decimal.Zero, fmt.Errorf("monto %q inválido (se espera coma decimal)", s)
	}
	normalized := strings.ReplaceAll(s, ".", "")
	normalized = strings.Replace(normalized, ",", ".", 1)
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("monto %q inválido", s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("monto %q negativo", s)
	}
	return d, nil
}

// validThousands exige que cada punto de la parte entera separe grupos de
// exactamente 3 dígitos, así "12.50" no se lee como 1250.
func validThousands(s string) bool {
	intPart, _, _ := strings.Cut(s, ",")
	groups := strings.Split(intPart, ".")
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return false
		}
	}
	return true
}

// parseTimestamp acepta dd/mm/yyyy hh:mm[:ss], hora local sin zona.
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha %q inválida (dd/mm/aaaa hh:mm[:ss])", s)
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
