package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"logsearch-gateway/config"
	_ "logsearch-gateway/docs"
	"logsearch-gateway/internal/controller"
	"logsearch-gateway/internal/middleware"
	"logsearch-gateway/internal/quickwit"
	"logsearch-gateway/internal/scheduler"
	"logsearch-gateway/internal/service"
	"logsearch-gateway/internal/store"
)

// @title           Log Search Gateway API
// @version         1.0
// @description     Structured log search over a Quickwit index, service discovery and AI-assisted trace error analysis.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @schemes   http https

// @tag.name         logs
// @tag.description  Log search and discovery

// @tag.name         ai
// @tag.description  AI-assisted trace analysis

// @tag.name         health
// @tag.description  API health check operations

func main() {
	app := fx.New(
		// Core Dependencies
		fx.Provide(
			NewConfig,
		),
		// Infrastructure Dependencies
		fx.Provide(
			NewGinEngine,
			NewQuickwitClient,
			quickwit.NewQuickwitLogRepository,
			scheduler.NewBackendHealth,
			NewBackendStatusReader,
			NewAnalysisStore,
			service.NewLogQueryService,
			service.NewServiceCatalogService,
			service.NewOpenAILLMService,
			service.NewAnalyzerService,
			controller.NewLogController,
			controller.NewServiceController,
			controller.NewAnalyzerController,
			controller.NewHealthController,
		),
		fx.Invoke(
			RegisterAPIRoutes,
			RegisterScheduler,
		),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}
	<-app.Done()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStop()
	log.Info().Msg("Shutting down application...")
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown due to error or timeout")
	}
}

func NewConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("log_level", cfg.LogLevel).Msg("Unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	return cfg, nil
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// NewQuickwitClient builds the shared backend client and probes it once at
// startup. An unreachable node is logged, not fatal: requests report backend
// errors until it comes up.
func NewQuickwitClient(cfg *config.Config) *quickwit.Client {
	client := quickwit.NewClient(cfg.Quickwit)
	if err := quickwit.WaitForBackend(context.Background(), client, cfg.Quickwit.ConnectMaxWait); err != nil {
		log.Warn().Err(err).Str("base_url", cfg.Quickwit.BaseURL).Msg("Quickwit not reachable at startup; continuing")
	} else {
		log.Info().Str("index_id", client.IndexID()).Msg("Quickwit client initialized and connection verified!")
	}
	return client
}

func NewAnalysisStore(cfg *config.Config) store.AnalysisStore {
	return store.NewInMemoryAnalysisStore(cfg.AIAnalyzer.CacheTTL)
}

func NewBackendStatusReader(health *scheduler.BackendHealth) controller.BackendStatusReader {
	return health
}

func RegisterAPIRoutes(
	lifecycle fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	logController *controller.LogController,
	serviceController *controller.ServiceController,
	analyzerController *controller.AnalyzerController,
	healthController *controller.HealthController,
) {
	controller.RegisterHealthRoutes(router, healthController)
	controller.RegisterLogRoutes(router, logController)
	controller.RegisterServiceRoutes(router, serviceController)
	controller.RegisterAnalyzerRoutes(router, analyzerController)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Starting HTTP server on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Msg("HTTP server ListenAndServe error")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Shutting down HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}

func RegisterScheduler(lc fx.Lifecycle, cfg *config.Config, client *quickwit.Client, health *scheduler.BackendHealth) error {
	_, err := scheduler.NewHealthScheduler(lc, cfg.Quickwit.HealthSchedule, client, health)
	return err
}
