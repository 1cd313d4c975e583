package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	"github.com/wichananm65/fashion-storefront/internal/address"
	"github.com/wichananm65/fashion-storefront/internal/admin"
	"github.com/wichananm65/fashion-storefront/internal/apiclient"
	"github.com/wichananm65/fashion-storefront/internal/auth"
	"github.com/wichananm65/fashion-storefront/internal/banner"
	"github.com/wichananm65/fashion-storefront/internal/cart"
	"github.com/wichananm65/fashion-storefront/internal/category"
	"github.com/wichananm65/fashion-storefront/internal/config"
	"github.com/wichananm65/fashion-storefront/internal/events"
	"github.com/wichananm65/fashion-storefront/internal/home"
	"github.com/wichananm65/fashion-storefront/internal/logging"
	"github.com/wichananm65/fashion-storefront/internal/metrics"
	"github.com/wichananm65/fashion-storefront/internal/order"
	"github.com/wichananm65/fashion-storefront/internal/product"
	"github.com/wichananm65/fashion-storefront/internal/review"
	"github.com/wichananm65/fashion-storefront/internal/search"
	"github.com/wichananm65/fashion-storefront/internal/session"
	"github.com/wichananm65/fashion-storefront/internal/tracing"
	"github.com/wichananm65/fashion-storefront/internal/user"
	"github.com/wichananm65/fashion-storefront/internal/web"
	"github.com/wichananm65/fashion-storefront/internal/wishlist"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	// request values are kept in sessions after the handler returns
	app := fiber.New(fiber.Config{BodyLimit: 20 * 1024 * 1024, Immutable: true})
	setupCORS(app)
	app.Use(logging.Middleware())

	if cfg.Tracing.CollectorHost != "" {
		tp, err := tracing.InitTracing(cfg.Tracing.CollectorHost)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init tracing")
		}
		defer func() { _ = tp.Shutdown(context.Background()) }()
		app.Use(tracing.Middleware(otel.Tracer("fashion-storefront")))
	}
	if cfg.MetricsEnable {
		app.Use(metrics.Middleware())
		app.Get("/metrics", metrics.Handler())
	}

	sessionRepo, closeDB := openSessionRepository(cfg.Database.URL)
	defer closeDB()
	sessions := session.NewManager(sessionRepo, session.Options{
		TTL:         cfg.Session.TTL,
		Secure:      cfg.CookieSecure,
		DefaultLang: cfg.DefaultLang,
	})
	app.Use(sessions.Middleware())
	app.Use(auth.PageGuard())

	publisher := newPublisher(cfg.Kafka)
	defer publisher.Close()

	client := apiclient.New(apiclient.Options{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout})
	resp := web.NewResponder(sessions)
	adminResp := web.NewAdminResponder(sessions)
	threshold := cfg.Storefront.FreeShippingThreshold

	// catalog
	categoryService := category.NewService(category.NewAPIRepository(client))
	productService := product.NewService(product.NewAPIRepository(client))
	reviewService := review.NewService(review.NewAPIRepository(client))

	// shopping
	cartStore := cart.NewStore(cart.NewAPIRepository(client), productService)
	sessions.OnEnd(cartStore.Forget)
	addressService := address.NewService(address.NewAPIRepository(client))
	orderService := order.NewService(order.NewAPIRepository(client), cartStore, publisher)
	wishlistService := wishlist.NewService(wishlist.NewAPIRepository(client))
	searchService := search.NewService(productService, publisher, cfg.Storefront.SearchDebounce, cfg.Storefront.SearchLimit)

	auth.NewHandler(auth.NewService(auth.NewAPIRepository(client)), sessions).RegisterPublicRoutes(app)
	banner.NewHandler().RegisterPublicRoutes(app)
	category.NewHandler(categoryService, resp).RegisterPublicRoutes(app)
	home.NewHandler(home.NewService(productService)).RegisterPublicRoutes(app)
	search.NewHandler(searchService, resp).RegisterPublicRoutes(app)

	reviewHandler := review.NewHandler(reviewService, resp)
	reviewHandler.RegisterPublicRoutes(app)
	product.NewHandler(productService, categoryService, reviewService, resp).RegisterPublicRoutes(app)

	// handlers below check the session themselves and answer 401 with a
	// login redirect
	reviewHandler.RegisterProtectedRoutes(app)
	user.NewHandler(user.NewService(user.NewAPIRepository(client)), sessions, resp).RegisterProtectedRoutes(app)
	cart.NewHandler(cartStore, threshold, publisher, resp).RegisterProtectedRoutes(app)
	wishlist.NewHandler(wishlistService, sessions, publisher, resp).RegisterProtectedRoutes(app)
	address.NewHandler(addressService, resp).RegisterProtectedRoutes(app)
	order.NewHandler(orderService, cartStore, addressService, threshold, resp).RegisterProtectedRoutes(app)

	adminGroup := app.Group("/bff/admin", auth.AdminGuard(adminResp, cfg.JWTSecret))
	admin.NewHandler(admin.NewService(client, categoryService), adminResp).RegisterRoutes(adminGroup)

	scheduler := mustStartScheduler(categoryService, sessions, cartStore, cfg)
	defer func() { _ = scheduler.Shutdown() }()

	go func() {
		if err := app.Listen(cfg.Addr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("addr", cfg.Addr).Str("api", cfg.API.BaseURL).Msg("storefront started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("CORS_ORIGINS"),
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, " + logging.RequestIDHeader,
		AllowCredentials: os.Getenv("CORS_ORIGINS") != "",
	}))
}

// openSessionRepository uses Postgres when a database is configured and
// keeps sessions in memory otherwise.
func openSessionRepository(dbURL string) (session.Repository, func()) {
	if dbURL == "" {
		log.Warn().Msg("DATABASE_URL is not set, sessions are kept in memory")
		return session.NewInMemoryRepository(), func() {}
	}

	db, err := sqlx.Connect("pgx", dbURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to session database")
	}
	repo := session.NewPostgresRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to prepare session table")
	}
	return repo, func() { _ = db.Close() }
}

func newPublisher(cfg config.KafkaConfig) events.Publisher {
	if cfg.BrokerAddress == "" {
		return events.NopPublisher{}
	}
	log.Info().Str("broker", cfg.BrokerAddress).Str("topic", cfg.BrokerTopic).Msg("publishing storefront events")
	return events.NewKafkaPublisher(cfg.BrokerAddress, cfg.BrokerTopic)
}

func mustStartScheduler(categories *category.Service, sessions *session.Manager, carts *cart.Store, cfg config.Config) gocron.Scheduler {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create scheduler")
	}
	if err := categories.Schedule(scheduler, cfg.Storefront.CatalogRefresh); err != nil {
		log.Fatal().Err(err).Msg("failed to schedule catalog refresh")
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(cfg.Session.Sweep),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if pruned := carts.Prune(cfg.Session.TTL); pruned > 0 {
				log.Info().Int("removed", pruned).Msg("idle cart mirrors removed")
			}
			n, err := sessions.Sweep(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("session sweep failed")
				return
			}
			if n > 0 {
				log.Info().Int64("removed", n).Msg("expired sessions removed")
			}
		}),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to schedule session sweep")
	}
	scheduler.Start()
	return scheduler
}
