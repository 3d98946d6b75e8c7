package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/audit"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/auth"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/config"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/database"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/handlers"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/logging"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/middleware"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/rankapi"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/repositories"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("base_url", cfg.BaseURL),
		zap.String("rank_api", cfg.RankAPI.BaseURL),
		zap.Bool("store_configured", cfg.Database.Configured()),
	)

	// The store is externally owned and may not be provisioned yet; run
	// degraded (nil repositories) rather than refusing to start.
	var searchRepo repositories.SearchRepository
	var serpRepo repositories.SerpRepository
	var wikiRepo repositories.WikiRepository
	if cfg.Database.Configured() {
		db, err := database.Connect(context.Background(), &cfg.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database",
				zap.String("error", logging.SanitizeError(err)))
		}
		defer db.Close()
		searchRepo = repositories.NewSearchRepository(db)
		serpRepo = repositories.NewSerpRepository(db)
		wikiRepo = repositories.NewWikiRepository(db)
	} else {
		logger.Warn("DATABASE_URL not set, running without the SEO store")
	}

	cookieSettings := auth.DeriveCookieSettings(cfg.BaseURL, cfg.CookieDomain)
	resolver := auth.NewResolver(cfg.SessionSecret, cookieSettings, logger)
	auditor := audit.NewSecurityAuditor(logger)
	rankClient := rankapi.NewClient(cfg.RankAPI.BaseURL, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewRankHistoryHandler(serpRepo, auditor, logger).RegisterRoutes(mux)
	handlers.NewWikiAnalysisHandler(wikiRepo, logger).RegisterRoutes(mux)
	handlers.NewGSCHandler(resolver, rankClient, auditor, logger).RegisterRoutes(mux)
	handlers.NewSearchesHandler(resolver, searchRepo, logger).RegisterRoutes(mux)

	// Serve the built dashboard/marketing pages behind the session gate.
	mux.Handle("/", http.FileServer(http.Dir("./ui/dist")))

	handler := middleware.RequestLogger(logger)(
		middleware.RouteGate(resolver, cfg.SignInPath, logger)(mux))

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting seobw-home",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

// newLogger builds a production logger, or a development logger for local runs.
func newLogger(env string) (*zap.Logger, error) {
	if env == "local" || env == "test" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
