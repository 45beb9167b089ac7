package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/fusionware/storefront/internal/api/http"
	"github.com/fusionware/storefront/internal/api/http/handlers"
	"github.com/fusionware/storefront/internal/auth"
	"github.com/fusionware/storefront/internal/config"
	"github.com/fusionware/storefront/internal/events"
	"github.com/fusionware/storefront/internal/mq"
	"github.com/fusionware/storefront/internal/observability"
	"github.com/fusionware/storefront/internal/persistence"
	"github.com/fusionware/storefront/internal/repository"
	"github.com/fusionware/storefront/internal/service"
	"github.com/fusionware/storefront/internal/session"
	"github.com/fusionware/storefront/internal/worker"
	"github.com/fusionware/storefront/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	var (
		productRepo  repository.ProductRepository
		ticketRepo   repository.TicketRepository
		historyRepo  repository.TicketHistoryRepository
		purchaseRepo repository.PurchaseRepository
	)
	if pg.Enabled() {
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), migrations.Files, logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		if cfg.Postgres.Seed {
			if err := repository.SeedIfEmpty(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to seed database", zap.Error(err))
			}
		}
		productRepo = repository.NewProductRepository(pg.PoolHandle())
		ticketRepo = repository.NewTicketRepository(pg.PoolHandle())
		historyRepo = repository.NewTicketHistoryRepository(pg.PoolHandle())
		purchaseRepo = repository.NewPurchaseRepository(pg.PoolHandle())
	} else {
		productRepo = repository.NewMemoryProductRepository(repository.SeedProducts())
		ticketRepo = repository.NewMemoryTicketRepository(repository.SeedTickets())
		historyRepo = repository.NewMemoryTicketHistoryRepository()
		purchaseRepo = repository.NewMemoryPurchaseRepository(repository.SeedPurchases())
	}

	rdb := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer rdb.Close()

	var (
		sessions    session.Store
		profileRepo repository.ProfileRepository
	)
	if rdb.Enabled() {
		sessions = session.NewRedisStore(rdb.Client)
		profileRepo = repository.NewRedisProfileRepository(rdb.Client)
	} else {
		sessions = session.NewMemoryStore()
		profileRepo = repository.NewMemoryProfileRepository()
	}

	credentials, err := auth.NewCredentialTable(cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash demo credentials", zap.Error(err))
	}
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	authMiddleware := auth.NewAuthMiddleware(tokens, sessions)

	dispatcher := events.NewInMemoryDispatcher()
	if cfg.MQTT.BrokerURL != "" {
		client, err := mq.Connect(cfg.MQTT, logger)
		if err != nil {
			logger.Warn("mqtt unavailable; events will only be logged", zap.Error(err))
			worker.StartNotificationWorker(dispatcher, logger, nil)
		} else {
			publisher := mq.NewPublisher(client, cfg.MQTT.TopicPrefix)
			defer publisher.Close()
			worker.StartNotificationWorker(dispatcher, logger, publisher)
		}
	} else {
		worker.StartNotificationWorker(dispatcher, logger, nil)
	}

	metrics := observability.NewMetrics()

	authService := service.NewAuthService(service.AuthDependencies{
		Credentials: credentials,
		Tokens:      tokens,
		Sessions:    sessions,
		Logger:      logger,
	})
	catalogService := service.NewCatalogService(service.CatalogDependencies{
		ProductRepo: productRepo,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	productService := service.NewProductService(service.ProductDependencies{
		ProductRepo: productRepo,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:  ticketRepo,
		HistoryRepo: historyRepo,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	dashboardService := service.NewDashboardService(service.DashboardDependencies{
		PurchaseRepo: purchaseRepo,
		TicketRepo:   ticketRepo,
		AdminStats:   repository.SeedAdminStats(),
		Activity:     repository.SeedActivity(),
	})
	profileService := service.NewProfileService(service.ProfileDependencies{ProfileRepo: profileRepo})
	statusService := service.NewStatusService(service.StatusDependencies{
		Services:  repository.SeedServices(),
		Incidents: repository.SeedIncidents(),
	})
	contactService := service.NewContactService(service.ContactDependencies{
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Logger:         logger,
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, rdb),
		Auth:           handlers.NewAuthHandler(authService, authMiddleware, logger),
		Products:       handlers.NewProductsHandler(catalogService, logger),
		Shop:           handlers.NewShopHandler(catalogService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService, profileService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Admin:          handlers.NewAdminHandler(dashboardService, metrics),
		AdminTickets:   handlers.NewAdminTicketsHandler(ticketService),
		AdminProducts:  handlers.NewAdminProductsHandler(productService),
		Status:         handlers.NewStatusHandler(statusService, contactService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
