// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"tripbook/internal/auth"
	"tripbook/internal/bookings"
	"tripbook/internal/catalog"
	"tripbook/internal/notifications"
	"tripbook/internal/payments"
	"tripbook/internal/pricing"
	"tripbook/internal/shared/config"
	"tripbook/internal/shared/database"
	"tripbook/pkg/cache"
	"tripbook/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config *config.Config
	db     *database.DB

	// Shared across feature wiring.
	cacheService cache.Service
	authRepo     auth.Repository
	producer     notifications.NotificationProducer
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB) *Router {
	return &Router{
		config: cfg,
		db:     db,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.cacheService = cache.NewService(r.db.GetRedisClient())
	r.authRepo = auth.NewRepository(r.db.GetPostgreSQL())

	r.setupHealthRoutes(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupCatalogRoutes(api)
		r.setupBookingRoutes(api)
	}
}

// Close releases resources the router wired up, currently the Kafka
// producer.
func (r *Router) Close() error {
	if r.producer != nil {
		return r.producer.Close()
	}
	return nil
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "tripbook-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "tripbook-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authService := auth.NewService(r.authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController)

	authRouter.SetupRoutes(rg)
}

// setupCatalogRoutes configures the public browse routes
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) {
	catalogRepo := catalog.NewRepository(r.db.GetPostgreSQL())
	catalogService := catalog.NewService(catalogRepo, r.cacheService)
	catalogController := catalog.NewController(catalogService)
	catalogRouter := catalog.NewRouter(catalogController)

	catalogRouter.SetupRoutes(rg)
}

// setupBookingRoutes wires the booking manager with its collaborators:
// pricing, the payment gateway, catalog-backed availability/inventory
// and the Kafka notifier.
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	userDirectory := auth.NewUserDirectoryAdapter(r.authRepo)

	catalogRepo := catalog.NewRepository(r.db.GetPostgreSQL())
	catalogAdapter := catalog.NewBookingAdapter(catalogRepo, r.cacheService)

	gateway := r.buildGateway()

	opts := []bookings.Option{
		bookings.WithAvailabilityChecker(catalogAdapter),
		bookings.WithInventoryAdjuster(catalogAdapter),
	}

	if notifier := r.buildNotifier(userDirectory); notifier != nil {
		opts = append(opts, bookings.WithNotifier(notifier))
	}

	bookingService := bookings.NewService(
		bookingRepo,
		pricing.NewCalculator(),
		gateway,
		userDirectory,
		bookings.Config{
			HoldWindow:      r.config.Booking.HoldWindow,
			DefaultCurrency: r.config.Booking.DefaultCurrency,
		},
		opts...,
	)

	bookingController := bookings.NewController(bookingService)
	bookingRouter := bookings.NewRouter(bookingController, r.config)

	bookingRouter.SetupRoutes(rg)
}

// buildGateway selects the live gateway when a Stripe key is configured
// and falls back to the deterministic in-memory one otherwise.
func (r *Router) buildGateway() payments.Gateway {
	log := logger.GetDefault()

	if r.config.Stripe.Enabled && r.config.Stripe.SecretKey != "" {
		gateway, err := payments.NewStripeGateway(r.config.Stripe.SecretKey)
		if err == nil {
			log.Info("payment gateway configured", "gateway", gateway.Name())
			return gateway
		}
		log.WithError(err).Error("failed to initialize Stripe gateway, falling back to mock")
	}

	log.Warn("payment gateway running in mock mode, charges are simulated")
	return payments.NewMockGateway(nil)
}

// buildNotifier wires the Kafka-backed notifier. Returns nil when the
// broker is unreachable; the booking service then keeps its no-op
// default.
func (r *Router) buildNotifier(users bookings.UserDirectory) bookings.Notifier {
	log := logger.GetDefault()

	producerConfig := notifications.DefaultKafkaProducerConfig()
	producerConfig.Brokers = r.config.Kafka.Brokers
	producerConfig.NotificationTopic = r.config.Kafka.NotificationsTopic

	producer, err := notifications.NewKafkaNotificationProducer(producerConfig)
	if err != nil {
		log.WithError(err).Warn("Kafka unavailable, booking notifications disabled")
		return nil
	}

	r.producer = producer
	return notifications.NewBookingNotifier(producer, users)
}
