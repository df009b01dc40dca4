package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionReportRequest parámetros de GET /api/reports/commissions.
// Ambas fechas vacías = ventana por defecto; si se informa una, se exigen las dos.
type CommissionReportRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD
	EndDate   string `query:"end_date"`   // YYYY-MM-DD
}

// ReportPeriodDTO límites exactos consultados (con hora de apertura/cierre).
type ReportPeriodDTO struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CommissionRecordDTO fila de la tabla de detalle.
type CommissionRecordDTO struct {
	SellerCode string          `json:"seller_code"`
	DueAt      time.Time       `json:"due_at"`
	VoucherID  string          `json:"voucher_id"`
	Value      decimal.Decimal `json:"value"`
	NetValue   decimal.Decimal `json:"net_value"`
}

// DailyBucketDTO punto de la serie diaria.
type DailyBucketDTO struct {
	Date                 string          `json:"date"` // YYYY-MM-DD
	TotalValue           decimal.Decimal `json:"total_value"`
	DistinctVoucherCount int             `json:"distinct_voucher_count"`
	AverageTicket        decimal.Decimal `json:"average_ticket"`
}

// GaugeBandDTO franja del indicador; Upper exclusivo salvo UpperInclusive.
type GaugeBandDTO struct {
	Band           string          `json:"band"`
	Lower          decimal.Decimal `json:"lower"`
	Upper          decimal.Decimal `json:"upper"`
	UpperInclusive bool            `json:"upper_inclusive"`
}

// GaugeDTO datos del indicador de ticket medio.
type GaugeDTO struct {
	Value decimal.Decimal `json:"value"`
	Max   decimal.Decimal `json:"max"`
	Band  string          `json:"band"` // low | medium | high | above_range
	Bands []GaugeBandDTO  `json:"bands"`
}

// CommissionReportDTO respuesta completa del reporte del vendedor.
// Los montos escalares se redondean a 2 decimales para mostrar.
type CommissionReportDTO struct {
	Seller          SellerResponse        `json:"seller"`
	Period          ReportPeriodDTO       `json:"period"`
	RecordCount     int                   `json:"record_count"`
	Records         []CommissionRecordDTO `json:"records"`
	AverageTicket   decimal.Decimal       `json:"average_ticket"`   // (Σ valor / cupones) × 10
	GrossCommission decimal.Decimal       `json:"gross_commission"` // 70% del valor líquido
	NetCommission   decimal.Decimal       `json:"net_commission"`   // bruta − 20 salvo exento; puede ser negativa
	DailySeries     []DailyBucketDTO      `json:"daily_series"`
	Gauge           GaugeDTO              `json:"gauge"`
}
