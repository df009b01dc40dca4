// Package commission contiene las reglas de negocio del reporte de comisiones:
// filtrado por vendedor, cálculo de métricas, agrupamiento diario, la ventana
// del reporte y las bandas del indicador de ticket medio.
//
// Todas las funciones son puras: no leen el reloj ni mantienen estado, por lo
// que pueden ejecutarse en paralelo sobre entradas independientes.
package commission

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// CanonicalCode convierte un identificador (código de vendedor, número de cupón)
// a su forma textual canónica. El origen puede entregar el mismo código como
// texto o como número; ambos lados se normalizan antes de comparar.
func CanonicalCode(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return canonicalText(x)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return canonicalFloat(float64(x), 32)
	case float64:
		return canonicalFloat(x, 64)
	case decimal.Decimal:
		if x.IsInteger() {
			return x.Truncate(0).String()
		}
		return x.String()
	case fmt.Stringer:
		return canonicalText(x.String())
	default:
		return canonicalText(fmt.Sprint(x))
	}
}

// canonicalText recorta espacios y reduce "7.00" a "7". Textos como "07" se respetan.
func canonicalText(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		return s
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return s
	}
	return d.Truncate(0).String()
}

func canonicalFloat(f float64, bits int) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

// CanonicalLogin normaliza un login para búsquedas sin distinción de mayúsculas.
func CanonicalLogin(login string) string {
	return cases.Fold().String(strings.TrimSpace(login))
}
