package commission

import "github.com/shopspring/decimal"

// Band franja del indicador de ticket medio.
type Band string

const (
	BandLow        Band = "low"         // [0, 100)
	BandMedium     Band = "medium"      // [100, 250)
	BandHigh       Band = "high"        // [250, 500]
	BandAboveRange Band = "above_range" // > 500, fuera de la escala del indicador
)

// GaugeMax valor máximo del eje del indicador.
var GaugeMax = decimal.NewFromInt(500)

// BandRange límites de una franja. Upper es exclusivo salvo en la última franja.
type BandRange struct {
	Band           Band
	Lower          decimal.Decimal
	Upper          decimal.Decimal
	UpperInclusive bool
}

// GaugeBands devuelve las franjas fijas del indicador en orden ascendente.
func GaugeBands() []BandRange {
	return []BandRange{
		{Band: BandLow, Lower: decimal.Zero, Upper: decimal.NewFromInt(100)},
		{Band: BandMedium, Lower: decimal.NewFromInt(100), Upper: decimal.NewFromInt(250)},
		{Band: BandHigh, Lower: decimal.NewFromInt(250), Upper: GaugeMax, UpperInclusive: true},
	}
}

// ClassifyTicket ubica un ticket medio en su franja.
func ClassifyTicket(averageTicket decimal.Decimal) Band {
	for _, b := range GaugeBands() {
		if averageTicket.LessThan(b.Upper) || (b.UpperInclusive && averageTicket.Equal(b.Upper)) {
			return b.Band
		}
	}
	return BandAboveRange
}
