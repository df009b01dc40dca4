package commission

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zerograu/comisiones-api/internal/domain/entity"
)

// Constantes fijas del negocio.
//
// averageTicketScale multiplica el ticket medio del período completo (no el diario).
// La asimetría entre ambas fórmulas viene de la regla original y se conserva tal cual.
var (
	averageTicketScale = decimal.NewFromInt(10)
	commissionRate     = decimal.RequireFromString("0.7") // 70% del valor líquido
	flatDeduction      = decimal.NewFromInt(20)           // descuento único por período
)

// Compute calcula ticket medio, comisión bruta, comisión real y la serie diaria
// sobre los registros ya filtrados por vendedor.
//
//	ticket medio    = Σ valor / cupones distintos × 10   (0 sin cupones)
//	comisión bruta  = Σ valor líquido × 0.7
//	comisión real   = comisión bruta − 20                  (salvo vendedor exento)
//
// La comisión real puede ser negativa; no se acota a cero.
func Compute(records []entity.CommissionRecord, isExempt bool) entity.ReportResult {
	totalValue := decimal.Zero
	netTotal := decimal.Zero
	vouchers := make(map[string]struct{}, len(records))
	for _, r := range records {
		totalValue = totalValue.Add(r.GrossValue)
		netTotal = netTotal.Add(r.NetValue)
		vouchers[voucherKey(r.VoucherID)] = struct{}{}
	}

	averageTicket := decimal.Zero
	if n := len(vouchers); n > 0 {
		averageTicket = totalValue.Div(decimal.NewFromInt(int64(n))).Mul(averageTicketScale)
	}

	grossCommission := netTotal.Mul(commissionRate)
	netCommission := grossCommission
	if !isExempt {
		netCommission = grossCommission.Sub(flatDeduction)
	}

	return entity.ReportResult{
		AverageTicket:   averageTicket,
		GrossCommission: grossCommission,
		NetCommission:   netCommission,
		DailySeries:     DailySeries(records),
	}
}

type dayKey struct {
	year  int
	month time.Month
	day   int
}

func (k dayKey) less(o dayKey) bool {
	if k.year != o.year {
		return k.year < o.year
	}
	if k.month != o.month {
		return k.month < o.month
	}
	return k.day < o.day
}

type dayAccumulator struct {
	date     time.Time
	total    decimal.Decimal
	vouchers map[string]struct{}
}

// DailySeries agrupa los registros por día calendario de DueAt (en la zona del propio
// registro). Los días sin registros no aparecen; el resultado va en orden ascendente.
// El ticket medio diario no lleva el factor ×10.
func DailySeries(records []entity.CommissionRecord) []entity.DailyBucket {
	days := make(map[dayKey]*dayAccumulator)
	for _, r := range records {
		y, m, d := r.DueAt.Date()
		key := dayKey{y, m, d}
		acc, ok := days[key]
		if !ok {
			acc = &dayAccumulator{
				date:     time.Date(y, m, d, 0, 0, 0, 0, r.DueAt.Location()),
				total:    decimal.Zero,
				vouchers: make(map[string]struct{}),
			}
			days[key] = acc
		}
		acc.total = acc.total.Add(r.GrossValue)
		acc.vouchers[voucherKey(r.VoucherID)] = struct{}{}
	}

	keys := make([]dayKey, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

	series := make([]entity.DailyBucket, 0, len(keys))
	for _, k := range keys {
		acc := days[k]
		count := len(acc.vouchers)
		avg := decimal.Zero
		if count > 0 {
			avg = acc.total.Div(decimal.NewFromInt(int64(count)))
		}
		series = append(series, entity.DailyBucket{
			Date:                 acc.date,
			TotalValue:           acc.total,
			DistinctVoucherCount: count,
			AverageTicket:        avg,
		})
	}
	return series
}

// voucherKey cupón sin espacios; a diferencia del código de vendedor no se
// normaliza el formato numérico ("7" y "7.00" son cupones distintos).
func voucherKey(id string) string {
	return strings.TrimSpace(id)
}
