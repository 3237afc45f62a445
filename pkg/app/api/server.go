// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/swap-offers/pkg/app/http"
	"github.com/chainsafe/swap-offers/pkg/auth"
	"github.com/chainsafe/swap-offers/pkg/catalog"
	"github.com/chainsafe/swap-offers/pkg/config"
	"github.com/chainsafe/swap-offers/pkg/offer"
	offerservice "github.com/chainsafe/swap-offers/pkg/offer/service"
	"github.com/chainsafe/swap-offers/pkg/offerstore"
	"github.com/chainsafe/swap-offers/pkg/pgutil"
	userservice "github.com/chainsafe/swap-offers/pkg/user/service"
	"github.com/chainsafe/swap-offers/pkg/userstore"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

type services struct {
	users   userservice.Service
	offers  offerservice.Service
	catalog catalog.Reader
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting swap offers API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	catalogStore := catalog.NewStore(db)
	if err = s.seedCatalog(ctx, catalogStore, logger); err != nil {
		return err
	}

	svcs, err := s.buildServices(db, catalogStore, logger)
	if err != nil {
		return err
	}

	router := s.setupRouter(svcs, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func (s *Server) seedCatalog(ctx context.Context, store *catalog.PGStore, logger *zap.Logger) error {
	if s.cfg.Catalog.SeedFile == "" {
		return nil
	}

	seed, err := catalog.LoadSeed(s.cfg.Catalog.SeedFile)
	if err != nil {
		return fmt.Errorf("load catalog seed: %w", err)
	}
	if err = store.Apply(ctx, seed, logger); err != nil {
		return fmt.Errorf("apply catalog seed: %w", err)
	}

	logger.Info("Catalog seed applied",
		zap.String("file", s.cfg.Catalog.SeedFile),
		zap.Int("chains", len(seed.Chains)),
		zap.Int("tokens", len(seed.Tokens)),
		zap.Int("nft_collections", len(seed.NFTs)),
	)
	return nil
}

func (s *Server) buildServices(db bun.IDB, catalogStore *catalog.PGStore, logger *zap.Logger) (*services, error) {
	policy, err := offer.ParseFallbackPolicy(s.cfg.Offers.FallbackPolicy)
	if err != nil {
		return nil, fmt.Errorf("offers config: %w", err)
	}

	userStore := userstore.NewStore(db)
	offerStore := offerstore.NewStore(db)
	planner := offer.NewPlanner(policy)

	offerSvc := offerservice.NewService(
		offerStore,
		userStore,
		catalogStore,
		planner,
		logger,
	)

	logger.Info("Offer lifecycle engine ready", zap.String("fallback_policy", string(planner.Fallback())))

	return &services{
		users:   userservice.NewLog(userservice.NewService(userStore, logger), logger),
		offers:  offerservice.NewLog(offerservice.NewInstrumented(offerSvc), logger),
		catalog: catalogStore,
	}, nil
}

func (s *Server) setupRouter(svcs *services, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Metrics.Enabled {
		r.Handle(s.cfg.Metrics.Path, promhttp.Handler())
	}

	r.Group(func(r chi.Router) {
		r.Use(auth.NewMiddleware(&s.cfg.Auth, logger).Handler)

		if s.cfg.RateLimit.Enabled {
			limiter := apphttp.NewRateLimiter(
				s.cfg.RateLimit.RequestsPerMinute,
				s.cfg.RateLimit.Burst,
				s.cfg.RateLimit.IdleTTL,
				auth.RateLimitKey,
				logger,
			)
			r.Use(limiter.Middleware)
		}

		userservice.RegisterRoutes(r, svcs.users, logger)
		catalog.RegisterRoutes(r, svcs.catalog)
		offerservice.RegisterRoutes(r, svcs.offers, logger)
	})

	return r
}
