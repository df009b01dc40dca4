package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerograu/comisiones-api/internal/application/auth"
	"github.com/zerograu/comisiones-api/internal/application/dto"
	"github.com/zerograu/comisiones-api/internal/application/report"
	"github.com/zerograu/comisiones-api/internal/domain"
	"github.com/zerograu/comisiones-api/internal/domain/commission"
	"github.com/zerograu/comisiones-api/internal/domain/entity"
	"github.com/zerograu/comisiones-api/internal/infrastructure/memory"
	apphttp "github.com/zerograu/comisiones-api/internal/interfaces/http"
	"github.com/zerograu/comisiones-api/pkg/config"
	"github.com/zerograu/comisiones-api/pkg/logger"
)

var brt = time.FixedZone("BRT", -3*60*60)

type stubSource struct {
	records []entity.CommissionRecord
	err     error
}

func (s *stubSource) FindByDueRange(context.Context, time.Time, time.Time) ([]entity.CommissionRecord, error) {
	return s.records, s.err
}

// buildApp arma la API completa sobre un directorio en memoria y un origen fijo.
func buildApp(t *testing.T, src *stubSource) *fiber.App {
	t.Helper()
	dir, _, err := memory.NewSellerDirectory([]config.SellerEntry{
		{Login: testLogin, Password: "4", Code: testSellerCode},
		{Login: "matheus", Password: "20", Code: "20"},
	}, []string{"matheus"})
	require.NoError(t, err)

	policy := commission.DefaultWindowPolicy()
	policy.Location = brt
	reportUC := report.NewReportUseCase(src, dir, policy, nil).
		WithClock(func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, brt) })
	authUC := auth.NewAuthUseCase(dir, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})

	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    authUC,
		ReportUC:  reportUC,
		JWTSecret: testJWTSecret,
		Logger:    logger.Nop(),
	})
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Code
}

func TestLoginHandler_DevuelveTokenUsable(t *testing.T) {
	app := buildApp(t, &stubSource{records: []entity.CommissionRecord{{
		SellerCode: "4",
		DueAt:      time.Date(2024, 3, 12, 11, 0, 0, 0, brt),
		VoucherID:  "A",
		GrossValue: decimal.NewFromInt(30),
		NetValue:   decimal.NewFromInt(100),
	}}})

	resp := postLogin(t, app, `{"login":"Cristiano","password":"4"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	require.NotEmpty(t, login.Token)

	rep := doGet(t, app, "/api/reports/commissions", "Bearer "+login.Token)
	defer rep.Body.Close()
	require.Equal(t, http.StatusOK, rep.StatusCode)

	var out dto.CommissionReportDTO
	require.NoError(t, json.NewDecoder(rep.Body).Decode(&out))
	assert.Equal(t, 1, out.RecordCount)
	assert.True(t, decimal.NewFromInt(300).Equal(out.AverageTicket), out.AverageTicket.String())
	assert.True(t, decimal.NewFromInt(70).Equal(out.GrossCommission))
	assert.True(t, decimal.NewFromInt(50).Equal(out.NetCommission))
	assert.Equal(t, "high", out.Gauge.Band)
	require.Len(t, out.DailySeries, 1)
	assert.Equal(t, "2024-03-12", out.DailySeries[0].Date)
}

func TestLoginHandler_Errores(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"password incorrecto", `{"login":"cristiano","password":"x"}`, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"login desconocido", `{"login":"nadie","password":"x"}`, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"campos vacíos", `{"login":"","password":""}`, http.StatusBadRequest, "VALIDATION"},
		{"cuerpo inválido", `{`, http.StatusBadRequest, "INVALID_BODY"},
	}
	app := buildApp(t, &stubSource{})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postLogin(t, app, tc.body)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, errorCode(t, resp))
		})
	}
}

func TestReportHandler_VentanaInvalida_Retorna400(t *testing.T) {
	app := buildApp(t, &stubSource{})
	resp := doGet(t, app, "/api/reports/commissions?start_date=2024-03-10&end_date=2024-03-01",
		bearer(t, testLogin, testSellerCode))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_WINDOW", errorCode(t, resp))
}

func TestReportHandler_VendedorRetirado_Retorna403(t *testing.T) {
	// token válido de un login que ya no está en la tabla de vendedores
	app := buildApp(t, &stubSource{})
	resp := doGet(t, app, "/api/reports/commissions", bearer(t, "antiguo", "99"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "UNKNOWN_SELLER", errorCode(t, resp))
}

func TestReportHandler_DatoMalformado_Retorna502(t *testing.T) {
	app := buildApp(t, &stubSource{err: domain.ErrMalformedValue})
	resp := doGet(t, app, "/api/reports/commissions", bearer(t, testLogin, testSellerCode))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "MALFORMED_DATA", errorCode(t, resp))
}

func TestReportHandler_ErrorDeOrigen_Retorna500SinDetalle(t *testing.T) {
	app := buildApp(t, &stubSource{err: context.DeadlineExceeded})
	resp := doGet(t, app, "/api/reports/commissions", bearer(t, testLogin, testSellerCode))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INTERNAL")
	assert.NotContains(t, string(body), "deadline")
}

func TestReportHandler_SinToken_Retorna401(t *testing.T) {
	resp := doGet(t, buildApp(t, &stubSource{}), "/api/reports/commissions", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGaugeBandsHandler_Publico(t *testing.T) {
	resp := doGet(t, buildApp(t, &stubSource{}), "/api/reports/gauge-bands", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var bands []dto.GaugeBandDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&bands))
	require.Len(t, bands, 3)
	assert.Equal(t, "medium", bands[1].Band)
}

func TestRequestLogger_AsignaRequestID(t *testing.T) {
	app := buildApp(t, &stubSource{})

	resp := doGet(t, app, "/api/reports/gauge-bands", "")
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/api/reports/gauge-bands", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp2, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, "abc-123", resp2.Header.Get(apphttp.HeaderRequestID))
}
