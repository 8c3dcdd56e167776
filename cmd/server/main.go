// Package main is the entry point for the PG listing search service.
//
//	@title			PG Listing Search API
//	@version		1.0.0
//	@description	Search, filter and sort paying-guest accommodation listings.
//
//	@contact.name	API Support
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/api/v1
//
//	@schemes		http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/pgnest/pg-listing-search/docs"

	// Application layers
	"github.com/pgnest/pg-listing-search/internal/adapter/catalog"
	listinghttp "github.com/pgnest/pg-listing-search/internal/adapter/http"
	httpmw "github.com/pgnest/pg-listing-search/internal/adapter/http/middleware"
	"github.com/pgnest/pg-listing-search/internal/config"
	"github.com/pgnest/pg-listing-search/internal/domain"
	"github.com/pgnest/pg-listing-search/internal/infrastructure/logger"
	"github.com/pgnest/pg-listing-search/internal/metrics"
	"github.com/pgnest/pg-listing-search/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	appLog := setupLogger(cfg)

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	source, reload, err := setupCatalog(cfg, appLog)
	if err != nil {
		appLog.Fatal().Err(err).Msg("Failed to load listing catalog")
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	setupMiddleware(e, cfg, appLog, m)
	setupRoutes(e, cfg, source, appLog, m)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Str("catalog", source.Name()).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	waitForSignals(e, appLog, reload)
}

// setupLogger builds the service logger and routes the global zerolog logger through it.
func setupLogger(cfg *config.Config) *logger.Logger {
	l := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.IsDevelopment(),
		ServiceName:  logger.DefaultServiceName,
	})
	log.Logger = l.Logger
	return l
}

// setupCatalog picks the listing source. A file catalog is loaded eagerly so a
// broken file stops startup, and the returned reload func re-reads it.
func setupCatalog(cfg *config.Config, appLog *logger.Logger) (domain.ListingSource, func(context.Context) error, error) {
	if cfg.UsesEmbeddedCatalog() {
		embedded, err := catalog.NewEmbedded()
		if err != nil {
			return nil, nil, err
		}
		return embedded, nil, nil
	}

	file, err := catalog.NewFile(cfg.Catalog.Path, catalog.WithLogger(appLog.WithSource(catalog.FileSourceName)))
	if err != nil {
		return nil, nil, err
	}

	reload := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, cfg.Timeouts.CatalogLoad)
		defer cancel()
		return file.Load(ctx)
	}
	if err := reload(context.Background()); err != nil {
		return nil, nil, err
	}
	return file, reload, nil
}

// setupMiddleware configures the Echo middleware stack.
func setupMiddleware(e *echo.Echo, cfg *config.Config, appLog *logger.Logger, m *metrics.Metrics) {
	var extra []echo.MiddlewareFunc
	if m != nil {
		extra = append(extra, m.Middleware())
	}

	httpmw.SetupWithConfig(e, appLog, httpmw.RecoveryConfig{
		DisablePrintStack: cfg.IsProduction(),
	}, extra...)
}

// setupRoutes configures the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, source domain.ListingSource, appLog *logger.Logger, m *metrics.Metrics) {
	ucConfig := &usecase.Config{
		Logger: appLog.WithSource(source.Name()),
	}
	if m != nil {
		ucConfig.Recorder = m
		e.GET(cfg.Metrics.Path, echo.WrapHandler(m.Handler()))
	}
	listingUseCase := usecase.NewListingSearchUseCase(source, ucConfig)

	listingHandler := listinghttp.NewListingHandler(listingUseCase)
	listinghttp.RegisterRoutesWithMiddleware(e, listingHandler, middleware.ContextTimeout(cfg.Timeouts.Request))

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// waitForSignals reloads the catalog on SIGHUP and shuts the server down on SIGINT or SIGTERM.
func waitForSignals(e *echo.Echo, appLog *logger.Logger, reload func(context.Context) error) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	for sig := range signals {
		if sig != syscall.SIGHUP {
			break
		}
		if reload == nil {
			appLog.Info().Msg("Embedded catalog has nothing to reload")
			continue
		}
		// A failed reload keeps the catalog that is already being served
		if err := reload(context.Background()); err != nil {
			appLog.Error().Err(err).Msg("Catalog reload failed")
		}
	}

	appLog.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("Error during server shutdown")
	}

	appLog.Info().Msg("Server stopped")
}
