package routes

import (
	"context"
	"net/http"
	"slices"
	"strconv"
	"time"

	_ "checkout_core/docs" // This will be auto-generated
	request "checkout_core/internal/adapter/http/dto/request"
	"checkout_core/internal/adapter/http/handlers"
	"checkout_core/internal/adapter/persistence/repository"
	"checkout_core/internal/config"
	"checkout_core/internal/infrastructure/backend"
	"checkout_core/internal/infrastructure/database"
	"checkout_core/internal/infrastructure/payments"
	"checkout_core/internal/usecase"
	"checkout_core/internal/usecase/interfaces"
	"checkout_core/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const cartKeyPrefix = "checkout_core:"

// dependencies are the use cases served over HTTP.
type dependencies struct {
	cart     usecase.ICartUseCase
	checkout usecase.ICheckoutUseCase
}

// Run will start the server
func Run() {
	cfg := config.Load()
	logger.Initialize(cfg.AppEnv)
	defer func() { _ = logger.Log.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, cleanup := buildDependencies(context.Background(), cfg)
	defer cleanup()

	router := newRouter(cfg, deps)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Log.Info("[http] listening", zap.Int("port", cfg.Port), zap.String("env", cfg.AppEnv))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		logger.Log.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func newRouter(cfg config.Config, deps dependencies) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := request.RegisterValidators(v); err != nil {
			logger.Log.Fatal("[http] failed registering validators", zap.Error(err))
		}
	}

	router := gin.New()
	setMiddlewares(router, cfg)

	cartHandler := handlers.NewCartHandler(deps.cart)
	checkoutHandler := handlers.NewCheckoutHandler(deps.checkout)
	paymentHandler := handlers.NewPaymentHandler(deps.checkout)
	validationHandler := handlers.NewValidationHandler()

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCartRoutes(v1, cartHandler)
	addCheckoutRoutes(v1, checkoutHandler)
	addPaymentRoutes(v1, paymentHandler)
	addValidationRoutes(v1, validationHandler)

	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	router.Use(logger.RequestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error(c.Request.Context(), "[http] recovered from panic", nil, zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(forwardAuthorization())
}

// corsConfig allows the storefront origins. An empty list or "*" allows any origin
// without credentials.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", logger.RequestIDHeader},
		ExposeHeaders: []string{logger.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

// forwardAuthorization hands the caller's Authorization header to the backend client
// unchanged.
func forwardAuthorization() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth := c.GetHeader("Authorization"); auth != "" {
			c.Request = c.Request.WithContext(backend.WithBearerToken(c.Request.Context(), auth))
		}
		c.Next()
	}
}

// buildDependencies wires the use cases. Optional infrastructure that cannot be reached
// is logged and replaced: the cart falls back to process memory, the ledger is disabled
// and an unconfigured payment provider leaves payments failing with a clear message.
func buildDependencies(ctx context.Context, cfg config.Config) (dependencies, func()) {
	var closers []func()
	cleanup := func() {
		for _, c := range closers {
			c()
		}
	}

	client := backend.NewClient(backend.Options{
		BaseURL:            cfg.Backend.BaseURL,
		Timeout:            cfg.Backend.Timeout,
		BreakerMaxFailures: cfg.Backend.BreakerMaxFailures,
		BreakerOpenTimeout: cfg.Backend.BreakerOpenTimeout,
	})

	var store interfaces.IKeyValueStore
	switch cfg.CartStore {
	case config.CartStoreRedis:
		rdb, err := database.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			logger.Log.Warn("[cart][store] redis unavailable, using in-memory store", zap.Error(err))
			store = repository.NewMemoryKeyValueStore()
			break
		}
		closers = append(closers, func() { _ = rdb.Close() })
		store = repository.NewRedisKeyValueStore(rdb, cartKeyPrefix, usecase.CartTTL)
	default:
		store = repository.NewMemoryKeyValueStore()
	}
	logger.Log.Info("[cart][store] selected", zap.String("store", cfg.CartStore))

	var paymentGateway interfaces.IPaymentGateway
	switch cfg.PaymentProvider {
	case config.PaymentProviderMercadoPago:
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.MercadoPagoCallbackURL, cfg.PaymentGatewayMock)
		if err != nil {
			logger.Log.Error("[payment][gateway] Mercado Pago gateway not configured", zap.Error(err))
		} else {
			paymentGateway = mpGateway
		}
	default:
		paymentGateway = client
	}

	var attempts interfaces.ICheckoutAttemptRepository
	if cfg.Ledger == config.LedgerDynamoDB {
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			logger.Log.Warn("[checkout][ledger] dynamodb unavailable, ledger disabled", zap.Error(err))
		} else {
			attempts = repository.NewCheckoutAttemptDynamoRepository(ddb, cfg.CheckoutAttemptsTbl)
		}
	}

	storage := usecase.NewCartStorage(store)
	reconciler := usecase.NewCartReconciliationUseCase(client)

	return dependencies{
		cart:     usecase.NewCartUseCase(storage, reconciler),
		checkout: usecase.NewCheckoutUseCase(storage, reconciler, client, paymentGateway, client, attempts, config.PSEBanks),
	}, cleanup
}
