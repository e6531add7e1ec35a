package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gyt-equipos/panol-api/internal/application/auth"
	"github.com/gyt-equipos/panol-api/internal/application/report"
	"github.com/gyt-equipos/panol-api/internal/application/usecase"
	infrapdf "github.com/gyt-equipos/panol-api/internal/infrastructure/pdf"
	"github.com/gyt-equipos/panol-api/internal/infrastructure/postgres"
	httpRouter "github.com/gyt-equipos/panol-api/internal/interfaces/http"
	"github.com/gyt-equipos/panol-api/pkg/config"
	"github.com/gyt-equipos/panol-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	configRepo := postgres.NewMinStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	itemUC := usecase.NewItemUseCase(itemRepo, configRepo, txRunner)
	minStockUC := usecase.NewMinStockUseCase(configRepo, itemRepo)
	alertUC := usecase.NewAlertUseCase(itemRepo, configRepo)

	// Primer arranque: sembrar un umbral por tipo de equipo si no hay reglas
	seeded, err := minStockUC.EnsureDefaults(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar reglas por defecto")
	}
	if seeded > 0 {
		log.Info().Int("reglas", seeded).Msg("reglas de stock mínimo sembradas")
	}

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewUseCase(itemRepo, configRepo, pdfGenerator, report.Options{
		FilePrefix:  cfg.Report.FilePrefix,
		CompanyName: cfg.Report.CompanyName,
		DeptName:    cfg.Report.DeptName,
	})

	gateUC := auth.NewGateUseCase(
		auth.GateConfig{Key: cfg.Gate.Key, KeyHash: cfg.Gate.KeyHash},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. Solo se registra si el
	// JSON generado está presente: sin el archivo la API arranca igual.
	if sw := httpRouter.Swagger("./docs/swagger.json", "Pañol API"); sw != nil {
		app.Use(sw)
	} else {
		log.Debug().Msg("docs/swagger.json ausente, Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:     itemUC,
		MinStockUC: minStockUC,
		AlertUC:    alertUC,
		ReportUC:   reportUC,
		GateUC:     gateUC,
		JWTSecret:  cfg.JWT.Secret,
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
