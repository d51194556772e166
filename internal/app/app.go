package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nutriblendai/nutriblend-backend/internal/config"
	"github.com/nutriblendai/nutriblend-backend/internal/handler"
	"github.com/nutriblendai/nutriblend-backend/internal/repository"
	"github.com/nutriblendai/nutriblend-backend/internal/service"
	"github.com/nutriblendai/nutriblend-backend/internal/utils"
	"github.com/nutriblendai/nutriblend-backend/pkg/observability"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	infra  Infrastructure
	config *config.Config
	router *gin.Engine
	server *http.Server
}

func NewApp(infra Infrastructure, cfg *config.Config) *App {
	repos := repository.NewRepositories(infra.Postgres())

	tokenManager := utils.NewTokenManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.ResetSecret,
		cfg.JWT.AccessTokenExpiry.Duration,
		cfg.JWT.RefreshTokenExpiry.Duration,
		cfg.JWT.ResetTokenExpiry.Duration,
	)

	blacklistService := service.NewTokenBlacklistService(infra.Redis())
	rateLimiter := service.NewRateLimiter(infra.Redis())
	healthChecker := NewHealthChecker(infra)

	authService := service.NewAuthService(
		repos.User,
		repos.Token,
		tokenManager,
		blacklistService,
		cfg.Security.BCryptCost,
		cfg.JWT.RefreshTokenExpiry.Duration,
	)
	intakeService := service.NewIntakeService(repos.Intake)
	goalService := service.NewGoalService(repos.Goal, repos.WeightLog)
	analyticsService := service.NewAnalyticsService(repos.Intake, repos.WeightLog, repos.Goal)
	analysisService := service.NewAnalysisService(cfg.OpenAI)

	handlers := &handlers{
		auth:      handler.NewAuthHandler(authService),
		intake:    handler.NewIntakeHandler(intakeService),
		goal:      handler.NewGoalHandler(goalService),
		analytics: handler.NewAnalyticsHandler(analyticsService),
		analysis:  handler.NewAnalysisHandler(analysisService),
	}

	router := gin.Default()
	router.Use(otelgin.Middleware("nutriblend-backend"))
	router.Use(handler.LoggerMiddleware(infra.Logger()))
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.AllowedMethods, cfg.CORS.AllowedHeaders))

	setupRoutes(router, cfg, handlers, authService, rateLimiter, healthChecker, infra.MetricsHandler())

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	return &App{
		infra:  infra,
		config: cfg,
		router: router,
		server: srv,
	}
}

func (a *App) Router() *gin.Engine {
	return a.router
}

type handlers struct {
	auth      *handler.AuthHandler
	intake    *handler.IntakeHandler
	goal      *handler.GoalHandler
	analytics *handler.AnalyticsHandler
	analysis  *handler.AnalysisHandler
}

func setupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	h *handlers,
	authService service.AuthService,
	rateLimiter *service.RateLimiter,
	healthChecker *HealthChecker,
	metricsHandler http.Handler,
) {
	router.GET("/metrics", observability.PrometheusHandler(metricsHandler))
	router.GET("/api/health", healthChecker.Handler)

	generalLimit := handler.RateLimitMiddleware(rateLimiter, "general",
		cfg.Security.RateLimitRequests, cfg.Security.RateLimitWindow.Duration)
	loginLimit := handler.RateLimitMiddleware(rateLimiter, "login",
		cfg.Security.LoginRateLimitRequests, cfg.Security.LoginRateLimitWindow.Duration)
	resetLimit := handler.RateLimitMiddleware(rateLimiter, "reset",
		cfg.Security.ResetRateLimitRequests, cfg.Security.ResetRateLimitWindow.Duration)

	api := router.Group("/api", generalLimit)
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.auth.Register)
			auth.POST("/login", loginLimit, h.auth.Login)
			auth.POST("/refresh", h.auth.Refresh)
			auth.POST("/logout", h.auth.Logout)
			auth.POST("/forgot-password", resetLimit, h.auth.ForgotPassword)
			auth.POST("/reset-password", h.auth.ResetPassword)
			auth.GET("/me", handler.AuthMiddleware(authService), h.auth.GetMe)
		}

		authed := api.Group("", handler.AuthMiddleware(authService))
		{
			authed.POST("/intakes", h.intake.Create)
			authed.GET("/intakes", h.intake.List)
			authed.GET("/intakes/stats", h.intake.Stats)

			authed.POST("/goal/set", h.goal.SetGoal)
			authed.GET("/goal", h.goal.GetGoal)
			authed.POST("/weight-logs", h.goal.CreateWeightLog)

			analytics := authed.Group("/analytics")
			{
				analytics.GET("/past-30-days-macros", h.analytics.Past30DaysMacros)
				analytics.GET("/monthly-macros", h.analytics.MonthlyMacros)
				analytics.GET("/weight-history", h.analytics.WeightHistory)
				analytics.GET("/goal-progress", h.analytics.GoalProgress)
				analytics.GET("/daily-calories", h.analytics.DailyCalories)
			}

			authed.POST("/analyze-structured", h.analysis.AnalyzeStructured)
		}
	}
}

func (a *App) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		a.infra.Logger().Info("Application starting",
			zap.String("host", a.config.Server.Host),
			zap.String("port", a.config.Server.Port),
		)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.infra.Logger().Error("Server error", zap.Error(err))
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case err := <-errChan:
		a.infra.Logger().Error("Application failed to start", zap.Error(err))
		serverErr = err
	case <-ctx.Done():
		a.infra.Logger().Info("Application stopped by context")
	}

	if err := a.Shutdown(); err != nil {
		a.infra.Logger().Error("Shutdown error", zap.Error(err))
		if serverErr != nil {
			return errors.Join(serverErr, err)
		}
		return err
	}

	return serverErr
}

func (a *App) Shutdown() error {
	a.infra.Logger().Info("Application shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	errs := make(chan error, 2)

	go func() {
		errs <- a.server.Shutdown(ctx)
	}()

	go func() {
		errs <- a.infra.Shutdown(ctx)
	}()

	err := errors.Join(<-errs, <-errs)
	if err != nil {
		a.infra.Logger().Error("Shutdown failed", zap.Error(err))
		return err
	}

	a.infra.Logger().Info("Application exited successfully")
	return nil
}
