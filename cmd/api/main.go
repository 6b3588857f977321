package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/estoque-api/internal/application/alerts"
	"github.com/tu-usuario/estoque-api/internal/application/auth"
	"github.com/tu-usuario/estoque-api/internal/application/ledger"
	"github.com/tu-usuario/estoque-api/internal/application/reports"
	"github.com/tu-usuario/estoque-api/internal/application/usecase"
	"github.com/tu-usuario/estoque-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/estoque-api/internal/interfaces/http"
	"github.com/tu-usuario/estoque-api/pkg/config"
	"github.com/tu-usuario/estoque-api/pkg/logger"
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

	if err := postgres.InitSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("inicialización del esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	alertsEngine := alerts.NewEngine(notificationRepo, movementRepo, alerts.Config{
		LowStockPercent: int64(cfg.Stock.LowStockPercent),
		InactivityDays:  cfg.Stock.InactivityDays,
	}, log)

	ledgerUC := ledger.NewUseCase(txRunner, movementRepo, alertsEngine, log)
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	reportsUC := reports.NewUseCase(reportRepo)
	authUC := auth.NewUseCase(userRepo, cfg.JWT)

	// Chequeo de inactividad al arranque; después queda disponible vía
	// POST /api/notifications/inactivity-check.
	if _, err := alertsEngine.CheckInactivity(ctx); err != nil {
		log.Error().Err(err).Msg("chequeo de inactividad inicial")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		SupplierUC: supplierUC,
		ClientUC:   clientUC,
		UserUC:     userUC,
		LedgerUC:   ledgerUC,
		Alerts:     alertsEngine,
		ReportsUC:  reportsUC,
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
