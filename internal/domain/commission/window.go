package commission

import (
	"fmt"
	"time"

	"github.com/zerograu/comisiones-api/internal/domain"
)

// Clock hora del día sin fecha (HH:MM).
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock interpreta "HH:MM" en formato de 24 horas.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, fmt.Errorf("hora %q inválida (esperado HH:MM): %w", s, domain.ErrInvalidInput)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Window intervalo cerrado [Start, End] del reporte.
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowPolicy regla del día comercial: el reporte abre a StartClock de la fecha
// inicial y cierra a EndClock de la fecha final.
type WindowPolicy struct {
	Location     *time.Location
	LookbackDays int
	StartClock   Clock
	EndClock     Clock
}

// DefaultWindowPolicy últimos 7 días a las 10:30 hasta hoy a las 10:29.
func DefaultWindowPolicy() WindowPolicy {
	return WindowPolicy{
		Location:     time.Local,
		LookbackDays: 7,
		StartClock:   Clock{Hour: 10, Minute: 30},
		EndClock:     Clock{Hour: 10, Minute: 29},
	}
}

// Zone zona horaria de la política (hora local del proceso si no se configuró).
func (p WindowPolicy) Zone() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

// Validate rechaza políticas que producen una ventana por defecto invertida,
// por ejemplo 0 días hacia atrás con apertura posterior al cierre.
func (p WindowPolicy) Validate() error {
	if p.LookbackDays < 0 {
		return fmt.Errorf("días hacia atrás negativos (%d): %w", p.LookbackDays, domain.ErrInvalidInput)
	}
	if err := p.DefaultWindow(time.Now()).Validate(); err != nil {
		return fmt.Errorf("política %d días %s-%s: %w", p.LookbackDays, p.StartClock, p.EndClock, err)
	}
	return nil
}

// DefaultWindow ventana por defecto relativa a today. La aritmética es de calendario
// (time.Date con día desplazado), así un cambio de horario de verano no mueve las horas.
func (p WindowPolicy) DefaultWindow(today time.Time) Window {
	loc := p.Zone()
	y, m, d := today.In(loc).Date()
	return Window{
		Start: time.Date(y, m, d-p.LookbackDays, p.StartClock.Hour, p.StartClock.Minute, 0, 0, loc),
		End:   time.Date(y, m, d, p.EndClock.Hour, p.EndClock.Minute, 0, 0, loc),
	}
}

// WindowForDates combina las fechas elegidas por el usuario con las horas de la política.
// Solo se usa la parte de fecha de startDate y endDate.
func (p WindowPolicy) WindowForDates(startDate, endDate time.Time) (Window, error) {
	loc := p.Zone()
	sy, sm, sd := startDate.Date()
	ey, em, ed := endDate.Date()
	w := Window{
		Start: time.Date(sy, sm, sd, p.StartClock.Hour, p.StartClock.Minute, 0, 0, loc),
		End:   time.Date(ey, em, ed, p.EndClock.Hour, p.EndClock.Minute, 0, 0, loc),
	}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Validate rechaza ventanas invertidas.
func (w Window) Validate() error {
	if w.Start.After(w.End) {
		return fmt.Errorf("inicio %s posterior al fin %s: %w",
			w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339), domain.ErrInvalidWindow)
	}
	return nil
}
