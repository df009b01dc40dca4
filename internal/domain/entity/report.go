package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyBucket agregado de un día calendario presente en los registros del vendedor.
type DailyBucket struct {
	Date                 time.Time // medianoche del día, en la zona horaria del registro
	TotalValue           decimal.Decimal
	DistinctVoucherCount int
	AverageTicket        decimal.Decimal // TotalValue / DistinctVoucherCount, sin escala
}

// ReportResult salida del cálculo de comisiones. Es un valor: cada llamada produce uno nuevo.
type ReportResult struct {
	AverageTicket   decimal.Decimal
	GrossCommission decimal.Decimal
	NetCommission   decimal.Decimal
	DailySeries     []DailyBucket // orden ascendente por fecha, sin días vacíos
}
