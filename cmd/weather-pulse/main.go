package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-pulse/configs"
	"weather-pulse/docs"
	"weather-pulse/internal/application/controller"
	"weather-pulse/internal/application/middleware"
	"weather-pulse/internal/application/schedule"
	"weather-pulse/internal/domain/gateway/api"
	"weather-pulse/internal/domain/gateway/db"
	"weather-pulse/internal/domain/gateway/directory"
	"weather-pulse/internal/domain/usecase/favorites"
	"weather-pulse/internal/domain/usecase/forecast"
	"weather-pulse/internal/domain/usecase/health"
	"weather-pulse/internal/domain/usecase/insight"
	"weather-pulse/internal/domain/usecase/search"
	"weather-pulse/internal/domain/usecase/session"
	"weather-pulse/pkg/log"
	"weather-pulse/pkg/msg"
	"weather-pulse/pkg/redis"
	"weather-pulse/pkg/resource"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title WeatherPulse API
// @version 1.1.0
// @description City search, mock forecasts, style insights and per-client presentation sessions.
// @BasePath /weather-pulse
func main() {
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Validator = controller.NewRequestValidator()
	middleware.SetupRequestLogger(e)
	middleware.SetupRecover(e)
	group := e.Group(configs.Env.ContextPath)
	docs.SwaggerInfo.BasePath = configs.Env.ContextPath
	group.GET("/swagger/*", echoSwagger.WrapHandler)

	var redisClient *redis.Client
	if resource.GetBool("redis.enabled") {
		client, err := redis.NewClient(redis.NewRedisConfig().
			WithHost(resource.GetString("redis.host")).
			WithPort(resource.GetInt("redis.port")).
			WithPassword(resource.GetString("redis.password")).
			WithDatabase(resource.GetInt("redis.database")).
			WithNamespace(resource.GetString("redis.namespace")))
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() { _ = client.Close() }()
		redisClient = client
	}

	// Init Gateways
	insightGateway := api.NewGeminiGateway(api.GeminiOptions{
		BaseURL:     resource.GetString("insight.base-url"),
		APIKey:      configs.Env.APIKey,
		Model:       resource.GetString("insight.model"),
		Timeout:     resource.GetDuration("insight.timeout"),
		MaxFailures: uint32(max(resource.GetInt("insight.breaker.max-failures"), 1)),
		OpenTimeout: resource.GetDuration("insight.breaker.open-timeout"),
	})

	healthGateway := db.NewDisabledHealthGateway()
	favoritesGateway := db.NewMemoryFavoritesGateway()
	var limiter insight.Limiter
	if redisClient != nil {
		healthGateway = db.NewRedisHealthGateway(redisClient)
		if resource.GetString("favorites.store") == "redis" {
			favoritesGateway = db.NewRedisFavoritesGateway(redisClient)
		}
		if perMinute := resource.GetInt("insight.rate-limit.per-minute"); perMinute > 0 {
			limiter = redis.NewRateLimiter(redisClient, redis.RateLimiterOptions{
				Name:   "insight",
				Limit:  perMinute,
				Window: time.Minute,
				Clock:  clock,
			})
		}
	}

	// Init UseCase
	searchUseCase := search.NewSearchUseCase(directory.NewDefaultCityDirectory(), search.Options{
		MaxResults: resource.GetInt("search.max-results"),
		MinLatency: resource.GetDuration("search.latency.min"),
		MaxLatency: resource.GetDuration("search.latency.max"),
		Clock:      clock,
	})
	forecastUseCase := forecast.NewForecastUseCase(nil, clock)
	insightUseCase := insight.NewInsightUseCase(insightGateway, limiter)
	favoritesUseCase := favorites.NewFavoritesUseCase(favoritesGateway, forecastUseCase, resource.GetStringSlice("favorites.defaults"))
	healthUseCase := health.NewHealthUseCase(healthGateway, insightGateway)

	registry := session.NewRegistry(session.Dependencies{
		Search:          searchUseCase,
		Forecast:        forecastUseCase,
		Insight:         insightUseCase,
		Clock:           clock,
		DebounceWindow:  resource.GetDuration("search.debounce"),
		DefaultLocation: resource.GetString("session.default-location"),
	}, favoritesUseCase, resource.GetDuration("session.idle-timeout"))

	// Init Controller
	healthController := controller.NewHealthController(group, healthUseCase)
	aboutController := controller.NewAboutController(group, resource.GetString("app.name"), resource.GetString("app.version"))
	weatherController := controller.NewWeatherController(group, searchUseCase, forecastUseCase, insightUseCase)
	sessionController := controller.NewSessionController(group, registry)
	favoritesController := controller.NewFavoritesController(group, registry, favoritesUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	aboutController.InitAboutRoutes()
	weatherController.InitWeatherRoutes()
	sessionController.InitSessionRoutes()
	favoritesController.InitFavoritesRoutes()

	// Init Schedule
	timeOfDayScheduler := schedule.NewTimeOfDayScheduler(registry, clock, resource.GetString("session.time-of-day.cron"))
	if err := timeOfDayScheduler.InitTimeOfDayScheduleTasks(); err != nil {
		log.Fatal("Failed to start time of day scheduler", zap.Error(err))
	}
	sweepScheduler, err := schedule.NewSessionSweepScheduler(registry, clock, resource.GetDuration("session.sweep-interval"))
	if err != nil {
		log.Fatal("Failed to create session sweep scheduler", zap.Error(err))
	}
	if err := sweepScheduler.InitSessionSweepTasks(); err != nil {
		log.Fatal("Failed to start session sweep scheduler", zap.Error(err))
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down server", zap.Error(err))
	}
	timeOfDayScheduler.Stop(shutdownCtx)
	if err := sweepScheduler.Stop(); err != nil {
		log.Error("Failed to stop session sweep scheduler", zap.Error(err))
	}
	registry.Shutdown(shutdownCtx)

	log.Info(msg.GetMessage("app.stop"))
}
