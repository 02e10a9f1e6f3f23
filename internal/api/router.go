package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fittrack/fitness-api/internal/api/handler"
	"github.com/fittrack/fitness-api/internal/api/middleware"
	"github.com/fittrack/fitness-api/internal/core/service"
	"github.com/fittrack/fitness-api/internal/infrastructure/config"
	mongodb "github.com/fittrack/fitness-api/internal/infrastructure/db/mongo"
	redisdb "github.com/fittrack/fitness-api/internal/infrastructure/db/redis"
)

// sessionTTL bounds both the token expiry and the cookie max-age.
const sessionTTL = 7 * 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fitness"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	workoutRepo := mongodb.NewWorkoutRepository(db)
	exerciseRepo := mongodb.NewExerciseRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)

	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, sessionTTL, log)
	workoutService := service.NewWorkoutService(workoutRepo, exerciseRepo, log)
	exerciseService := service.NewExerciseService(exerciseRepo)

	authHandler := handler.NewAuthHandler(authService, sessionTTL, cfg.Production())
	workoutHandler := handler.NewWorkoutHandler(workoutService)
	exerciseHandler := handler.NewExerciseHandler(exerciseService)

	auth := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, auth)

	// --- Workout routes (owner-scoped, session required) ---
	workouts := e.Group("/workouts", auth)
	workouts.GET("", workoutHandler.List)
	workouts.POST("", workoutHandler.Create)
	workouts.GET("/:id", workoutHandler.Get)
	workouts.PUT("/:id", workoutHandler.Update)
	workouts.DELETE("/:id", workoutHandler.Delete)

	// --- Exercise catalog (read-only) ---
	exercises := e.Group("/exercises", auth)
	exercises.GET("", exerciseHandler.List)
	exercises.GET("/:id", exerciseHandler.Get)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
