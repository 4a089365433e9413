package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/db/migrations"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/auth"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/procurement"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/infrastructure/notify"
	infrapdf "github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/infrastructure/pdf"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/infrastructure/postgres"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/infrastructure/search"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/infrastructure/storage"
	httpRouter "github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/interfaces/http"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/pkg/config"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/pkg/logger"
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

	if err := migrations.Up(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones de base de datos")
	}

	accountRepo := postgres.NewAccountRepository(pool)
	vendorRepo := postgres.NewVendorProfileRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notifier := notify.New(cfg.Notify, log)
	indexer := search.New(cfg.Search, log)

	// GCS es opcional: sin bucket el servicio arranca igual y los uploads
	// fallan con UPSTREAM hasta que se configure.
	var objectStorage procurement.ObjectStorage
	gcsStorage, err := storage.New(ctx, cfg.Storage)
	switch {
	case err == nil:
		objectStorage = gcsStorage
		defer gcsStorage.Close()
	case errors.Is(err, storage.ErrDisabled):
		log.Warn().Msg("GCS_BUCKET no configurado: subida de documentos deshabilitada")
		objectStorage = storage.Disabled{}
	default:
		log.Fatal().Err(err).Msg("inicializar Google Cloud Storage")
	}

	authUC := auth.NewAuthUseCase(accountRepo, vendorRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	resolver := auth.NewResolver(accountRepo, vendorRepo)

	vendorUC := procurement.NewVendorUseCase(vendorRepo, indexer)
	orderUC := procurement.NewOrderUseCase(orderRepo, vendorRepo, assignmentRepo, indexer)
	quoteUC := procurement.NewQuoteUseCase(quoteRepo, orderRepo, accountRepo, notifier, indexer)
	decideUC := procurement.NewDecideQuoteUseCase(txRunner, quoteRepo, orderRepo, vendorRepo, notifier, indexer)
	assignmentUC := procurement.NewAssignmentUseCase(assignmentRepo, orderRepo, accountRepo)
	documentUC := procurement.NewDocumentUseCase(documentRepo, orderUC, objectStorage)
	searchUC := procurement.NewSearchUseCase(statsRepo)

	// PDF: representación imprimible de la orden de compra
	pdfGenerator := infrapdf.NewMarotoOrderPDF()
	orderPDFUC := procurement.NewOrderPDFUseCase(orderUC, vendorRepo, quoteRepo, pdfGenerator)

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
		Title:    "VendorSync API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		Resolver:     resolver,
		VendorUC:     vendorUC,
		OrderUC:      orderUC,
		OrderPDFUC:   orderPDFUC,
		QuoteUC:      quoteUC,
		DecideUC:     decideUC,
		AssignmentUC: assignmentUC,
		DocumentUC:   documentUC,
		SearchUC:     searchUC,
		JWTSecret:    cfg.JWT.Secret,
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
