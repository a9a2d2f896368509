package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pixora/storefront/internal/domain/auth"
	"github.com/pixora/storefront/internal/domain/catalog"
	"github.com/pixora/storefront/internal/handler"
	"github.com/pixora/storefront/internal/session"
	"github.com/pixora/storefront/internal/storage/bolt"
	"github.com/pixora/storefront/internal/storage/postgres"
	"github.com/pixora/storefront/pkg/health"
	"github.com/pixora/storefront/pkg/httpmiddleware"
)

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr), zap.String("snapshot", cfg.SnapshotPath))

	// Durable catalog snapshot.
	snap, err := bolt.Open(cfg.SnapshotPath)
	if err != nil {
		return errors.Wrap(err, "open catalog snapshot")
	}
	defer func() { _ = snap.Close() }()

	// Stores.
	store := catalog.NewStore(snap, lg.Named("catalog"))
	sessions := session.NewManager(cfg.Session.TTL)
	sessions.StartCleanup(ctx, cfg.Session.CleanupInterval)

	keys := auth.NewKeySet([]byte(cfg.Admin.Pepper), cfg.Admin.Keys)
	if len(cfg.Admin.Keys) == 0 {
		lg.Warn("no admin API keys configured, admin routes will reject all requests")
	}

	// Health check service.
	healthSvc := health.New()
	healthSvc.AddReadinessCheck("snapshot", time.Second, func(context.Context) error {
		return snap.Ping()
	})
	healthSvc.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(10000))
	healthSvc.SetReady(true)

	// HTTP surface.
	h := handler.New(store, sessions, keys)
	mux := http.NewServeMux()
	mux.HandleFunc("/livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("/readyz", healthSvc.ReadyEndpoint)
	mux.Handle("/api/", h.Routes())

	instrumented := otelhttp.NewHandler(mux, "storefront",
		otelhttp.WithTracerProvider(m.TracerProvider()),
		otelhttp.WithMeterProvider(m.MeterProvider()),
	)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(instrumented,
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins:     cfg.CORS.Origins,
				AllowHeaders:     []string{"Content-Type", "X-Session-ID", "api_key"},
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           86400,
			}),
			httpmiddleware.RateLimit(ctx, httpmiddleware.RateLimitConfig{
				Max:    cfg.RateLimit.Max,
				Window: cfg.RateLimit.Window,
			}),
			httpmiddleware.RequestID(),
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.LogRequests(),
		),
	}

	g, gctx := errgroup.WithContext(ctx)

	// Optional remote catalog refresh, fire-and-forget: any failure or empty
	// result is advisory and the catalog stays on its current list.
	if cfg.Remote.URL != "" {
		g.Go(func() error {
			refreshFromRemote(gctx, lg.Named("remote"), store, cfg.Remote)
			return nil
		})
	}

	g.Go(func() error {
		lg.Info("Server listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server")
		}
		return nil
	})

	// Graceful shutdown: drain readiness, wait, then stop the listener.
	g.Go(func() error {
		<-gctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		return nil
	})

	return g.Wait()
}

// refreshFromRemote fetches the top records from the external catalog,
// normalizes them, and replaces the store's list. Errors and empty results
// only log an advisory.
func refreshFromRemote(ctx context.Context, lg *zap.Logger, store *catalog.Store, cfg RemoteConfig) {
	pool, err := postgres.NewPool(ctx, cfg.URL)
	if err != nil {
		lg.Info("remote catalog unavailable, keeping current list", zap.Error(err))
		return
	}
	defer pool.Close()

	source := postgres.NewCatalogSource(pool)
	records, err := source.FetchTop(ctx, cfg.Limit)
	if err != nil {
		lg.Info("remote catalog read failed, keeping current list", zap.Error(err))
		return
	}
	if len(records) == 0 {
		lg.Info("remote catalog empty, keeping current list")
		return
	}

	n := catalog.Normalizer{FallbackImage: catalog.SeedImage()}
	store.SetAll(n.NormalizeAll(records))
	lg.Info("catalog refreshed from remote", zap.Int("products", len(records)))
}
