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

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/weiawesome/library-id/internal/client"
	"github.com/weiawesome/library-id/internal/config"
	"github.com/weiawesome/library-id/internal/generator"
	"github.com/weiawesome/library-id/internal/handler"
	"github.com/weiawesome/library-id/internal/isbn"
	"github.com/weiawesome/library-id/internal/metrics"
	"github.com/weiawesome/library-id/internal/service"
	pkglog "github.com/weiawesome/library-id/pkg/log"
	"github.com/weiawesome/library-id/pkg/response"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "isbn-service",
	})
	logger := pkglog.L()

	// Initialize generators
	isbns := isbn.NewGenerator(nil)

	snowflake, err := generator.NewSnowflakeGenerator(cfg.Snowflake.MachineID, cfg.Snowflake.Epoch)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create snowflake generator")
	}
	logger.Info().Int64("machine_id", cfg.Snowflake.MachineID).Int64("epoch", cfg.Snowflake.Epoch).Msg("snowflake generator initialized")

	nanoidGen, err := generator.NewNanoIDGenerator(cfg.NanoID.Size, cfg.NanoID.Alphabet)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create nanoid generator")
	}

	cuid2Gen, err := generator.NewCUID2Generator(cfg.CUID2.Length)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create cuid2 generator")
	}

	registry := generator.NewRegistry(
		generator.NewISBN13Generator(isbns),
		generator.NewISBN10Generator(isbns),
		generator.NewUUIDGenerator(),
		generator.NewULIDGenerator(),
		generator.NewKSUIDGenerator(),
		snowflake,
		nanoidGen,
		cuid2Gen,
	)

	m := metrics.New(prometheus.DefaultRegisterer)

	// Catalog backend is optional
	var backend service.CatalogBackend
	if cfg.Catalog.BaseURL != "" {
		backend = client.NewCatalogClient(cfg.Catalog.BaseURL, cfg.Catalog.APIToken, cfg.Catalog.Timeout())
		logger.Info().Str(pkglog.FieldBackendURL, cfg.Catalog.BaseURL).Msg("catalog backend configured")
	} else {
		logger.Warn().Msg("catalog.base_url not set, book endpoints disabled")
	}

	// Initialize services and handler
	idService := service.NewIdentifierService(registry, m)
	bookService := service.NewBookService(isbns, backend, m)
	httpHandler := handler.NewHandler(idService, bookService)
	handler.RegisterValidators()

	// Setup Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))
	r.Use(handler.CORS(cfg.CORS.AllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	var apiMiddleware []gin.HandlerFunc
	if cfg.RateLimit.RPS > 0 {
		apiMiddleware = append(apiMiddleware, handler.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.TrustProxyHeaders))
	}
	httpHandler.RegisterRoutes(r, apiMiddleware...)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Strs("schemes", schemeNames(registry)).Float64("rate_limit_rps", cfg.RateLimit.RPS).Bool("trust_proxy_headers", cfg.RateLimit.TrustProxyHeaders).Msg("isbn-service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down isbn-service")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	logger.Info().Msg("isbn-service stopped")
}

func schemeNames(r *generator.Registry) []string {
	schemes := r.Schemes()
	names := make([]string, len(schemes))
	for i, s := range schemes {
		names[i] = string(s)
	}
	return names
}
