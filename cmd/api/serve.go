package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/jhoicas/giftcert-api/internal/application/usecase"
	"github.com/jhoicas/giftcert-api/internal/domain/entity"
	"github.com/jhoicas/giftcert-api/internal/domain/search"
	"github.com/jhoicas/giftcert-api/internal/infrastructure/observability"
	"github.com/jhoicas/giftcert-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/giftcert-api/internal/interfaces/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levanta el servidor HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	db := postgres.OpenDB(pool)
	defer db.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(db, postgres.MigrateUp); err != nil {
			return err
		}
		log.Info().Msg("esquema al día")
	}

	registry, err := search.NewRegistry(entity.Catalogs()...)
	if err != nil {
		return fmt.Errorf("catálogo de campos: %w", err)
	}
	metrics := observability.NewMetrics("giftcert")
	engine := usecase.NewSearchEngine(
		search.NewParser(registry, cfg.Search.MaxPageSize, log.Component("search")),
		search.NewBuilder(registry),
		metrics,
	)

	certRepo := postgres.NewGiftCertificateRepository(pool)
	tagRepo := postgres.NewTagRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	certSearch := postgres.NewGiftCertificateSearch(db)
	tagSearch := postgres.NewTagSearch(db)
	userSearch := postgres.NewUserSearch(db)
	orderSearch := postgres.NewOrderSearch(db)

	certUC := usecase.NewGiftCertificateUseCase(certRepo, certSearch, tagSearch, txRunner, engine)
	tagUC := usecase.NewTagUseCase(tagRepo, tagSearch, certSearch, engine)
	userUC := usecase.NewUserUseCase(userRepo, userSearch, orderSearch, engine)
	orderUC := usecase.NewOrderUseCase(orderRepo, userRepo, orderSearch, certSearch, txRunner, engine)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware(metrics))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gift Certificates API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Certificates: certUC,
		Tags:         tagUC,
		Users:        userUC,
		Orders:       orderUC,
		JWTSecret:    cfg.JWT.Secret,
		JWTIssuer:    cfg.JWT.Issuer,
		Metrics:      metrics.Handler(),
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
	return nil
}
