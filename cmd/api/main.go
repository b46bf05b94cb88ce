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
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/Vigilancia-api/docs"
	"github.com/jhoicas/Vigilancia-api/internal/application/auth"
	"github.com/jhoicas/Vigilancia-api/internal/application/features"
	"github.com/jhoicas/Vigilancia-api/internal/application/inventory"
	"github.com/jhoicas/Vigilancia-api/internal/application/rounds"
	"github.com/jhoicas/Vigilancia-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Vigilancia-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Vigilancia-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Vigilancia-api/internal/infrastructure/redis"
	"github.com/jhoicas/Vigilancia-api/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/Vigilancia-api/internal/interfaces/http"
	"github.com/jhoicas/Vigilancia-api/pkg/config"
	"github.com/jhoicas/Vigilancia-api/pkg/logger"
)

// @title                       Vigilancia API
// @version                     1.0
// @description                 Backend de operación para empresas de seguridad privada: inventario por puesto, rondas, personal y feature flags.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	// Redis solo cachea flags: si no responde al arrancar se sigue leyendo de PostgreSQL.
	rdb, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis no disponible, feature flags sin cache hasta que reconecte")
		rdb = infraredis.NewLazyClient(cfg.Redis)
	}
	defer rdb.Close()

	userRepo := postgres.NewUserRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	roundRepo := postgres.NewRoundRepository(pool)
	checkpointRepo := postgres.NewCheckpointRepository(pool)
	flagRepo := postgres.NewFeatureFlagRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	epsRepo := postgres.NewEPSRepository(pool)
	salaryRepo := postgres.NewSalaryRepository(pool)
	shiftRepo := postgres.NewShiftRepository(pool)
	subPostRepo := postgres.NewSubPostRepository(pool)
	incidentRepo := postgres.NewIncidentRepository(pool)
	noveltyRepo := postgres.NewNoveltyRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recordMovementUC := inventory.NewRecordMovementUseCase(txRunner)
	stockUC := inventory.NewStockUseCase(stockRepo, movementRepo, infrapdf.NewStockReportGenerator(cfg.App.Name))
	roundsUC := rounds.NewUseCase(roundRepo, checkpointRepo,
		rounds.Policy{BlockWithHistory: cfg.Rounds.BlockWithHistory},
		log.Component("rondas"),
	)
	featureSvc := features.NewService(flagRepo, infraredis.NewFeatureFlagCache(rdb), cfg.Features.CacheTTL(), log.Component("features"))
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	jobs := scheduler.New(stockUC, log.Component("scheduler"))
	if err := jobs.Start(cfg.Jobs.LowStockCron); err != nil {
		log.Fatal().Err(err).Str("spec", cfg.Jobs.LowStockCron).Msg("expresión cron inválida")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.AccessLog(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Vigilancia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		RecordMovement: recordMovementUC,
		StockUC:        stockUC,
		RoundsUC:       roundsUC,
		Features:       featureSvc,
		ClientUC:       usecase.NewClientUseCase(clientRepo),
		ContractUC:     usecase.NewContractUseCase(contractRepo, clientRepo),
		EPSUC:          usecase.NewEPSUseCase(epsRepo),
		SalaryUC:       usecase.NewSalaryUseCase(salaryRepo),
		ShiftUC:        usecase.NewShiftUseCase(shiftRepo, subPostRepo),
		SubPostUC:      usecase.NewSubPostUseCase(subPostRepo),
		IncidentUC:     usecase.NewIncidentUseCase(incidentRepo),
		NoveltyUC:      usecase.NewNoveltyUseCase(noveltyRepo),
		JWTSecret:      cfg.JWT.Secret,
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
	jobs.Stop()

	log.Info().Msg("aplicación detenida")
}
