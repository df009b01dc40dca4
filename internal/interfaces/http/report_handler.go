package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zerograu/comisiones-api/internal/application/dto"
	"github.com/zerograu/comisiones-api/internal/application/report"
	"github.com/zerograu/comisiones-api/pkg/logger"
)

// ReportHandler expone el reporte de comisiones del vendedor autenticado.
type ReportHandler struct {
	uc  *report.ReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *report.ReportUseCase, log *logger.Logger) *ReportHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportHandler{uc: uc, log: log}
}

// Commissions godoc
// @Summary      Reporte de comisiones del vendedor
// @Description  Sin fechas usa la ventana por defecto (últimos 7 días, 10:30 a 10:29).
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.CommissionReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/reports/commissions [get]
func (h *ReportHandler) Commissions(c *fiber.Ctx) error {
	var req dto.CommissionReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros inválidos"})
	}
	login := GetLogin(c)
	out, err := h.uc.GetReport(c.UserContext(), login, req)
	if err != nil {
		status, body := mapError(err)
		ev := h.log.Warn()
		if status >= fiber.StatusInternalServerError {
			ev = h.log.Error()
		}
		ev.Str("request_id", GetRequestID(c)).Str("login", login).Err(err).Msg("reporte de comisiones")
		return c.Status(status).JSON(body)
	}
	return c.JSON(out)
}

// GaugeBands godoc
// @Summary      Franjas del indicador de ticket medio
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.GaugeBandDTO
// @Router       /api/reports/gauge-bands [get]
func (h *ReportHandler) GaugeBands(c *fiber.Ctx) error {
	return c.JSON(report.GaugeBands())
}
