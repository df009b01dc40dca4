// Package report orquesta el reporte de comisiones de un vendedor:
// resuelve vendedor y ventana, consulta el origen y aplica las reglas de commission.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zerograu/comisiones-api/internal/application/auth"
	"github.com/zerograu/comisiones-api/internal/application/dto"
	"github.com/zerograu/comisiones-api/internal/domain"
	"github.com/zerograu/comisiones-api/internal/domain/commission"
	"github.com/zerograu/comisiones-api/internal/domain/entity"
	"github.com/zerograu/comisiones-api/internal/domain/repository"
	"github.com/zerograu/comisiones-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// ReportUseCase genera el reporte de comisiones del vendedor autenticado.
//
// No guarda estado entre llamadas: cada reporte trabaja sobre su propia copia
// de los registros, así que pueden atenderse varios vendedores en paralelo.
type ReportUseCase struct {
	source  repository.CommissionRecordSource
	sellers repository.SellerDirectory
	policy  commission.WindowPolicy
	now     func() time.Time
	log     *logger.Logger
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	source repository.CommissionRecordSource,
	sellers repository.SellerDirectory,
	policy commission.WindowPolicy,
	log *logger.Logger,
) *ReportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportUseCase{
		source:  source,
		sellers: sellers,
		policy:  policy,
		now:     time.Now,
		log:     log,
	}
}

// WithClock reemplaza el reloj usado para la ventana por defecto.
func (uc *ReportUseCase) WithClock(now func() time.Time) *ReportUseCase {
	uc.now = now
	return uc
}

// GetReport construye el reporte para login. El vendedor se resuelve antes de
// consultar: un login desconocido devuelve domain.ErrUnknownSeller sin tocar el origen.
func (uc *ReportUseCase) GetReport(
	ctx context.Context,
	login string,
	req dto.CommissionReportRequest,
) (*dto.CommissionReportDTO, error) {
	seller, err := uc.sellers.Lookup(login)
	if err != nil {
		return nil, err
	}

	window, err := uc.ResolveWindow(req)
	if err != nil {
		return nil, err
	}

	records, err := uc.source.FindByDueRange(ctx, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("reporte: consultar comisiones: %w", err)
	}

	filtered := commission.FilterBySeller(records, seller.SellerCode)
	result := commission.Compute(filtered, seller.IsExempt)

	uc.log.Info().
		Str("seller_code", seller.SellerCode).
		Time("start", window.Start).
		Time("end", window.End).
		Int("fetched", len(records)).
		Int("matched", len(filtered)).
		Msg("reporte de comisiones generado")

	return toReportDTO(seller, window, filtered, result), nil
}

// ResolveWindow usa las fechas del request o, si no hay ninguna, la ventana por defecto.
func (uc *ReportUseCase) ResolveWindow(req dto.CommissionReportRequest) (commission.Window, error) {
	startStr := strings.TrimSpace(req.StartDate)
	endStr := strings.TrimSpace(req.EndDate)

	if startStr == "" && endStr == "" {
		w := uc.policy.DefaultWindow(uc.now())
		if err := w.Validate(); err != nil {
			return commission.Window{}, fmt.Errorf("ventana por defecto: %w", err)
		}
		return w, nil
	}
	if startStr == "" || endStr == "" {
		return commission.Window{}, fmt.Errorf("start_date y end_date deben informarse juntos: %w", domain.ErrInvalidWindow)
	}

	loc := uc.policy.Zone()
	start, err := time.ParseInLocation(dateLayout, startStr, loc)
	if err != nil {
		return commission.Window{}, fmt.Errorf("start_date %q inválido (YYYY-MM-DD): %w", startStr, domain.ErrInvalidWindow)
	}
	end, err := time.ParseInLocation(dateLayout, endStr, loc)
	if err != nil {
		return commission.Window{}, fmt.Errorf("end_date %q inválido (YYYY-MM-DD): %w", endStr, domain.ErrInvalidWindow)
	}
	return uc.policy.WindowForDates(start, end)
}

// GaugeBands franjas fijas del indicador, para la capa de presentación.
func GaugeBands() []dto.GaugeBandDTO {
	bands := commission.GaugeBands()
	out := make([]dto.GaugeBandDTO, 0, len(bands))
	for _, b := range bands {
		out = append(out, dto.GaugeBandDTO{
			Band:           string(b.Band),
			Lower:          b.Lower,
			Upper:          b.Upper,
			UpperInclusive: b.UpperInclusive,
		})
	}
	return out
}

func toReportDTO(
	seller *entity.Seller,
	window commission.Window,
	records []entity.CommissionRecord,
	result entity.ReportResult,
) *dto.CommissionReportDTO {
	rows := make([]dto.CommissionRecordDTO, 0, len(records))
	for _, r := range records {
		rows = append(rows, dto.CommissionRecordDTO{
			SellerCode: r.SellerCode,
			DueAt:      r.DueAt,
			VoucherID:  r.VoucherID,
			Value:      r.GrossValue,
			NetValue:   r.NetValue,
		})
	}

	series := make([]dto.DailyBucketDTO, 0, len(result.DailySeries))
	for _, b := range result.DailySeries {
		series = append(series, dto.DailyBucketDTO{
			Date:                 b.Date.Format(dateLayout),
			TotalValue:           b.TotalValue.Round(2),
			DistinctVoucherCount: b.DistinctVoucherCount,
			AverageTicket:        b.AverageTicket.Round(2),
		})
	}

	averageTicket := result.AverageTicket.Round(2)
	return &dto.CommissionReportDTO{
		Seller:          auth.ToSellerResponse(seller),
		Period:          dto.ReportPeriodDTO{Start: window.Start, End: window.End},
		RecordCount:     len(rows),
		Records:         rows,
		AverageTicket:   averageTicket,
		GrossCommission: result.GrossCommission.Round(2),
		NetCommission:   result.NetCommission.Round(2),
		DailySeries:     series,
		Gauge: dto.GaugeDTO{
			Value: averageTicket,
			Max:   commission.GaugeMax,
			Band:  string(commission.ClassifyTicket(result.AverageTicket)),
			Bands: GaugeBands(),
		},
	}
}
