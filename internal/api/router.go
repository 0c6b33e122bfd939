package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/stayhaven/booking-system/docs"
	"github.com/stayhaven/booking-system/internal/api/handler"
	"github.com/stayhaven/booking-system/internal/api/middleware"
	"github.com/stayhaven/booking-system/internal/core/domain"
	"github.com/stayhaven/booking-system/internal/core/service"
	"github.com/stayhaven/booking-system/internal/infrastructure/config"
	mongodb "github.com/stayhaven/booking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/stayhaven/booking-system/internal/infrastructure/db/redis"
	"github.com/stayhaven/booking-system/pkg/logger"
)

// Services groups the use-case layer so callers outside the router (the
// completion worker, tests) can share the same wired instances.
type Services struct {
	Auth     *service.AuthService
	Property *service.PropertyService
	Booking  *service.BookingService
	Review   *service.ReviewService
}

// NewRouter builds and returns the Echo instance with all routes registered,
// plus the wired service layer.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) (*echo.Echo, *Services) {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)

	// --- Services ---
	summaryCache := redisdb.NewSummaryCache(rdb, cfg.Booking.SummaryCacheTTL)

	svcs := &Services{
		Auth:     service.NewAuthService(userRepo, cfg.JWTSecret, 0),
		Property: service.NewPropertyService(propertyRepo, log),
		Booking:  service.NewBookingService(bookingRepo, propertyRepo, cfg.Booking.TaxesAndFees, log),
		Review:   service.NewReviewService(bookingRepo, propertyRepo, reviewRepo, userRepo, summaryCache, log),
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svcs.Auth)
	propertyHandler := handler.NewPropertyHandler(svcs.Property)
	bookingHandler := handler.NewBookingHandler(svcs.Booking)
	reviewHandler := handler.NewReviewHandler(svcs.Review)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	ownerOnly := middleware.RBAC(domain.RoleOwner)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Public catalog ---
	e.GET("/v1/properties", propertyHandler.List)
	e.GET("/v1/properties/:id", propertyHandler.Get)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authMiddleware)

	v1.POST("/properties", propertyHandler.Create, ownerOnly)
	v1.PUT("/properties/:id", propertyHandler.Update, ownerOnly)

	v1.POST("/bookings", bookingHandler.Create)
	v1.GET("/bookings", bookingHandler.ListMine)
	v1.POST("/bookings/:id/status", bookingHandler.Transition)
	v1.POST("/bookings/:id/review", reviewHandler.Attach)

	v1.POST("/reviews/:id/helpful", reviewHandler.MarkHelpful)
	v1.POST("/reviews/:id/report", reviewHandler.Report)

	// --- Owner-only routes ---
	owner := v1.Group("/owner", ownerOnly)
	owner.GET("/properties", propertyHandler.ListForOwner)
	owner.GET("/bookings", bookingHandler.ListForOwner)
	owner.GET("/reviews", reviewHandler.ListForOwner)
	owner.GET("/ratings/summary", reviewHandler.RatingsSummary)

	return e, svcs
}
