package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/zerograu/comisiones-api/internal/application/auth"
	"github.com/zerograu/comisiones-api/internal/application/dto"
	"github.com/zerograu/comisiones-api/internal/application/report"
	"github.com/zerograu/comisiones-api/internal/domain/commission"
	"github.com/zerograu/comisiones-api/internal/domain/repository"
	"github.com/zerograu/comisiones-api/internal/infrastructure/cache"
	"github.com/zerograu/comisiones-api/internal/infrastructure/memory"
	"github.com/zerograu/comisiones-api/internal/infrastructure/postgres"
	httpRouter "github.com/zerograu/comisiones-api/internal/interfaces/http"
	"github.com/zerograu/comisiones-api/pkg/config"
	"github.com/zerograu/comisiones-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	policy, err := windowPolicy(cfg.Report)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración del reporte")
	}

	table, err := config.LoadSellers(cfg.SellersFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.SellersFile).Msg("tabla de vendedores")
	}
	sellers, unmatched, err := memory.NewSellerDirectory(table.Sellers, table.Exempt)
	if err != nil {
		log.Fatal().Err(err).Msg("tabla de vendedores")
	}
	for _, login := range unmatched {
		log.Warn().Str("login", login).Msg("vendedor exento sin credenciales, se ignora")
	}
	log.Info().Int("sellers", sellers.Len()).Msg("tabla de vendedores cargada")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	var source repository.CommissionRecordSource = postgres.NewCommissionRepository(pool, cfg.DB.CommissionsTable, policy.Zone())

	// Caché opcional: sin Redis (o si no responde) se consulta directo a PostgreSQL.
	if cfg.Redis.Enabled() {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, caché desactivada")
		} else {
			defer client.Close()
			source = cache.NewCachedRecordSource(source, cache.NewRedisStore(client), cfg.Redis.CacheTTL(), policy.Zone(), log.Child("cache"))
			log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.CacheTTL()).Msg("caché de comisiones activa")
		}
	}

	authUC := auth.NewAuthUseCase(sellers, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	reportUC := report.NewReportUseCase(source, sellers, policy, log.Child("report"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Child("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Comisiones API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ReportUC:  reportUC,
		JWTSecret: cfg.JWT.Secret,
		Logger:    log.Child("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func windowPolicy(cfg config.ReportConfig) (commission.WindowPolicy, error) {
	loc, err := cfg.Location()
	if err != nil {
		return commission.WindowPolicy{}, err
	}
	start, err := commission.ParseClock(cfg.StartClock)
	if err != nil {
		return commission.WindowPolicy{}, err
	}
	end, err := commission.ParseClock(cfg.EndClock)
	if err != nil {
		return commission.WindowPolicy{}, err
	}
	policy := commission.WindowPolicy{
		Location:     loc,
		LookbackDays: cfg.LookbackDays,
		StartClock:   start,
		EndClock:     end,
	}
	if err := policy.Validate(); err != nil {
		return commission.WindowPolicy{}, err
	}
	return policy, nil
}
