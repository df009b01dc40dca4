package commission_test

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerograu/comisiones-api/internal/domain"
	"github.com/zerograu/comisiones-api/internal/domain/commission"
)

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func TestDefaultWindow_SieteDiasDeDiezYMediaADiezVeintinueve(t *testing.T) {
	loc := saoPaulo(t)
	p := commission.DefaultWindowPolicy()
	p.Location = loc

	today := time.Date(2024, 5, 13, 16, 45, 12, 0, loc)
	w := p.DefaultWindow(today)

	assert.Equal(t, time.Date(2024, 5, 6, 10, 30, 0, 0, loc), w.Start)
	assert.Equal(t, time.Date(2024, 5, 13, 10, 29, 0, 0, loc), w.End)
}

func TestDefaultWindow_CruzaCambioDeMes(t *testing.T) {
	p := commission.DefaultWindowPolicy()
	p.Location = time.UTC

	w := p.DefaultWindow(time.Date(2024, 3, 3, 8, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 2, 25, 10, 30, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 3, 3, 10, 29, 0, 0, time.UTC), w.End)
}

// El cambio de horario de verano no debe mover las horas de apertura/cierre.
func TestDefaultWindow_CambioHorarioVerano(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	p := commission.DefaultWindowPolicy()
	p.Location = ny

	// 2024-03-10 02:00 EST → 03:00 EDT
	w := p.DefaultWindow(time.Date(2024, 3, 12, 9, 0, 0, 0, ny))

	assert.Equal(t, 10, w.Start.Hour())
	assert.Equal(t, 30, w.Start.Minute())
	assert.Equal(t, 5, w.Start.Day())
	assert.Equal(t, 10, w.End.Hour())
	assert.Equal(t, 29, w.End.Minute())
	assert.Equal(t, 7*24*time.Hour-time.Minute-time.Hour, w.End.Sub(w.Start),
		"la semana con cambio de horario tiene una hora menos")
}

func TestDefaultWindow_ConvierteHoyALaZonaDeLaPolitica(t *testing.T) {
	loc := saoPaulo(t)
	p := commission.DefaultWindowPolicy()
	p.Location = loc

	// 01:00 UTC del 14 sigue siendo el 13 en São Paulo (UTC-3).
	w := p.DefaultWindow(time.Date(2024, 5, 14, 1, 0, 0, 0, time.UTC))

	assert.Equal(t, 13, w.End.Day())
}

func TestDefaultWindow_PoliticaConfigurable(t *testing.T) {
	p := commission.WindowPolicy{
		Location:     time.UTC,
		LookbackDays: 1,
		StartClock:   commission.Clock{Hour: 6},
		EndClock:     commission.Clock{Hour: 5, Minute: 59},
	}
	w := p.DefaultWindow(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2023, 12, 31, 6, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 1, 1, 5, 59, 0, 0, time.UTC), w.End)
}

func TestWindowForDates_AplicaHorasDeLaPolitica(t *testing.T) {
	loc := saoPaulo(t)
	p := commission.DefaultWindowPolicy()
	p.Location = loc

	w, err := p.WindowForDates(
		time.Date(2024, 4, 1, 0, 0, 0, 0, loc),
		time.Date(2024, 4, 30, 0, 0, 0, 0, loc),
	)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 1, 10, 30, 0, 0, loc), w.Start)
	assert.Equal(t, time.Date(2024, 4, 30, 10, 29, 0, 0, loc), w.End)
}

func TestWindowForDates_Invertida(t *testing.T) {
	p := commission.DefaultWindowPolicy()
	p.Location = time.UTC

	_, err := p.WindowForDates(
		time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidWindow))
}

func TestWindowForDates_MismoDiaConHorasPorDefecto_Invalida(t *testing.T) {
	p := commission.DefaultWindowPolicy()
	p.Location = time.UTC
	d := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

	_, err := p.WindowForDates(d, d)
	assert.ErrorIs(t, err, domain.ErrInvalidWindow, "10:30 → 10:29 del mismo día es una ventana invertida")
}

func TestParseClock(t *testing.T) {
	c, err := commission.ParseClock("10:30")
	require.NoError(t, err)
	assert.Equal(t, commission.Clock{Hour: 10, Minute: 30}, c)
	assert.Equal(t, "10:30", c.String())

	_, err = commission.ParseClock("25:00")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = commission.ParseClock("10h30")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWindowPolicy_Validate_CeroDiasConHorasPorDefecto(t *testing.T) {
	p := commission.DefaultWindowPolicy()
	p.Location = time.UTC
	p.LookbackDays = 0

	w := p.DefaultWindow(time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, w.Validate(), domain.ErrInvalidWindow)
	assert.ErrorIs(t, p.Validate(), domain.ErrInvalidWindow)
}

func TestWindowPolicy_Validate(t *testing.T) {
	p := commission.DefaultWindowPolicy()
	assert.NoError(t, p.Validate())

	p.LookbackDays = 0
	p.StartClock = commission.Clock{Hour: 0, Minute: 0}
	p.EndClock = commission.Clock{Hour: 23, Minute: 59}
	assert.NoError(t, p.Validate(), "mismo día de 00:00 a 23:59 es válido")

	p.LookbackDays = -1
	assert.ErrorIs(t, p.Validate(), domain.ErrInvalidInput)
}
