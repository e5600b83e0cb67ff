package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"p2p-offerbook/config"
	"p2p-offerbook/internal/adapter/catalog"
	httpHandler "p2p-offerbook/internal/adapter/http/handler"
	"p2p-offerbook/internal/adapter/metrics"
	"p2p-offerbook/internal/adapter/storage/memory"
	pgStorage "p2p-offerbook/internal/adapter/storage/postgres"
	redisStorage "p2p-offerbook/internal/adapter/storage/redis"
	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports"
	"p2p-offerbook/internal/service"
	"p2p-offerbook/pkg/logger"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the offer book node",
	Long: `Connects to PostgreSQL and Redis, activates both offer book views and
serves the HTTP API until SIGINT or SIGTERM.

Example usage:
  offerbook serve
  offerbook serve --config config/config.yaml --migrate`,
	RunE: runServe,
}

var serveMigrate bool

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "Apply the database schema before starting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.JWT.Secret == "" {
		return errors.New("jwt.secret must be set")
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("default_currency", cfg.Market.DefaultCurrency).
		Msg("Starting offer book node")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	if serveMigrate {
		if err := pgStorage.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		log.Info().Msg("Schema applied")
	}

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	node := domain.NodeAddress{HostName: cfg.Market.NodeHost, Port: cfg.Market.NodePort}
	cat := catalog.New(cfg.Market.DefaultCurrency)

	// Runtime stores over the repositories
	user := memory.NewUserStore(pgStorage.NewUserProfileRepo(pool), node)
	offers := memory.NewOfferBook(pgStorage.NewOfferRepo(pool), user, logger.Component(log, "offers"))
	prefs := memory.NewPreferenceStore(
		pgStorage.NewPreferenceRepo(pool),
		node.FullAddress(),
		defaultPreferences(cat),
		logger.Component(log, "preferences"),
	)
	filters := memory.NewFilterCache(redisStorage.NewFilterRuleStore(rdb))
	trades := memory.NewTradeLedger(pgStorage.NewClosedTradeRepo(pool))

	if err := prefs.Load(ctx); err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}

	reg := metrics.NewRegistry()
	feed := redisStorage.NewPriceFeedPublisher(rdb, logger.Component(log, "price_feed"))
	hub := httpHandler.NewStreamHub(reg, log)

	book := service.NewOfferBookService(service.ViewDeps{
		Offers:    offers,
		Catalog:   cat,
		Prefs:     prefs,
		PriceFeed: feed,
		Navigator: hub,
		Trust:     service.NewTrustEvaluator(user, prefs, filters, trades, cfg.Market.HostSuffix, cfg.Market.ProtocolVersion),
		Metrics:   reg,
	}, logger.Component(log, "offerbook"))

	refresher := service.NewRefresher(logger.Component(log, "refresher"), syncJobs(cfg.Sync, user, offers, filters, trades)...)

	// The first sync runs before the views activate so they start from a
	// bootstrapped offer set when the database is reachable.
	if err := refresher.RunOnce(ctx); err != nil {
		log.Warn().Err(err).Msg("Initial sync incomplete")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		OfferBook:      book,
		Preferences:    prefs,
		Catalog:        cat,
		TokenSvc:       service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer),
		Stream:         hub,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		Metrics:        reg,
		HealthCheckers: []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
			memory.NewBootstrapCheck(offers),
		},
		Logger: log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return book.Run(gctx) })
	g.Go(func() error { return refresher.Run(gctx) })
	g.Go(func() error { return prefs.Run(gctx, cfg.Sync.PreferenceFlush) })
	g.Go(func() error { return feed.Run(gctx) })
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")
		hub.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
		}
		return nil
	})

	err = g.Wait()
	log.Info().Msg("Server exited")
	return err
}

// defaultPreferences is used until the operator saves their own: all
// currencies on both tabs, tracking the catalog's default set.
func defaultPreferences(cat *catalog.Catalog) domain.Preferences {
	return domain.Preferences{
		BuyScreenCurrencyCode:  domain.ShowAllFlag,
		SellScreenCurrencyCode: domain.ShowAllFlag,
		TradeCurrencies:        cat.DefaultTracked(),
	}
}

func syncJobs(
	cfg config.SyncConfig,
	user *memory.UserStore,
	offers *memory.OfferBook,
	filters *memory.FilterCache,
	trades *memory.TradeLedger,
) []service.Job {
	return []service.Job{
		{Name: "user_profile", Interval: cfg.OfferInterval, Run: user.Reload},
		{Name: "offers", Interval: cfg.OfferInterval, Run: offers.Reload},
		{Name: "filter_rules", Interval: cfg.FilterInterval, Run: filters.Reload},
		{Name: "closed_trades", Interval: cfg.ClosedTradeInterval, Run: trades.Reload},
	}
}
