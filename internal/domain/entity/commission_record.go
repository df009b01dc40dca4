package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionRecord una fila cruda de la tabla de comisiones.
// Los montos ya vienen validados como decimales no negativos desde el adaptador de origen.
type CommissionRecord struct {
	SellerCode string          // código del vendedor, comparado como texto canónico
	DueAt      time.Time       // fecha/hora de vencimiento; ancla del rango y del agrupamiento diario
	VoucherID  string          // número de cupón; puede repetirse entre líneas
	GrossValue decimal.Decimal // valor de la venta, base del ticket medio
	NetValue   decimal.Decimal // valor líquido, base de la comisión
}
