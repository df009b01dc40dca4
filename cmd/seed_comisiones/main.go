// seed_comisiones genera el script SQL para poblar la tabla de comisiones
// a partir de una exportación CSV del sistema de caja (Windows-1252, separador ';').
//
// Uso: go run ./cmd/seed_comisiones [ruta/comissoes.csv]
// Por defecto busca comissoes.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_comissoes.sql
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	csvPath := "comissoes.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, bad, err := readExport(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	for _, e := range bad {
		fmt.Fprintf(os.Stderr, "Fila descartada, %v\n", e)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_comissoes.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSeed(out, filepath.Base(csvPath), rows); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d registros, %d descartados\n", outPath, len(rows), len(bad))
}

// writeSeed escribe un único INSERT multi-fila; sin filas deja solo el encabezado.
func writeSeed(w io.Writer, source string, rows []seedRow) error {
	var b strings.Builder
	b.WriteString("-- Comisiones importadas del sistema de caja\n")
	fmt.Fprintf(&b, "-- Generado desde %s\n\n", source)

	if len(rows) > 0 {
		b.WriteString("INSERT INTO comissoes (codigo_vendedor, data_hora_vencimento, numero_cupom, valor, valor_liquido) VALUES\n")
		for i, r := range rows {
			fmt.Fprintf(&b, "  ('%s', '%s', '%s', %s, %s)",
				escapeSQL(r.seller),
				r.dueAt.Format("2006-01-02 15:04:05"),
				escapeSQL(r.voucher),
				r.value.String(),
				r.netValue.String(),
			)
			if i < len(rows)-1 {
				b.WriteString(",\n")
			} else {
				b.WriteString(";\n")
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
