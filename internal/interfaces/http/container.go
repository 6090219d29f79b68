// Package http wires the application together behind a gin engine: it builds
// repositories, infrastructure services, use cases and handlers, and exposes
// the assembled router.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUsecases "github.com/lumira-inc/lumira/internal/application/auth/usecases"
	billingUsecases "github.com/lumira-inc/lumira/internal/application/billing/usecases"
	studioUsecases "github.com/lumira-inc/lumira/internal/application/studio/usecases"
	"github.com/lumira-inc/lumira/internal/domain/billing"
	"github.com/lumira-inc/lumira/internal/domain/entitlement"
	"github.com/lumira-inc/lumira/internal/domain/studio"
	"github.com/lumira-inc/lumira/internal/domain/subscription"
	"github.com/lumira-inc/lumira/internal/domain/user"
	"github.com/lumira-inc/lumira/internal/infrastructure/config"
	"github.com/lumira-inc/lumira/internal/infrastructure/genai"
	"github.com/lumira-inc/lumira/internal/infrastructure/identity"
	infraPayment "github.com/lumira-inc/lumira/internal/infrastructure/payment"
	"github.com/lumira-inc/lumira/internal/infrastructure/ratelimit"
	"github.com/lumira-inc/lumira/internal/infrastructure/repository"
	"github.com/lumira-inc/lumira/internal/interfaces/http/handlers"
	"github.com/lumira-inc/lumira/internal/shared/db"
	"github.com/lumira-inc/lumira/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo   user.Repository
	subRepo    subscription.Repository
	orderRepo  billing.OrderRepository
	recordRepo studio.RecordRepository
}

// allUseCases holds all application use case instances.
type allUseCases struct {
	syncProfileUC *authUsecases.SyncProfileUseCase
	getProfileUC  *authUsecases.GetProfileUseCase

	conceptUC  *studioUsecases.GenerateConceptUseCase
	generateUC *studioUsecases.GenerateImagesUseCase
	historyUC  *studioUsecases.ListHistoryUseCase

	createOrderUC  *billingUsecases.CreateOrderUseCase
	callbackUC     *billingUsecases.HandleCallbackUseCase
	listPaymentsUC *billingUsecases.ListPaymentsUseCase
}

// allHandlers holds all HTTP handler instances.
type allHandlers struct {
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	studioHandler  *handlers.StudioHandler
	paymentHandler *handlers.PaymentHandler
}

// Container wires repositories, infrastructure services, use cases and
// handlers together and owns the resources that need shutdown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	verifier    *identity.Verifier
	rateLimiter ratelimit.RateLimiter
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(database *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     database,
		cfg:    cfg,
		log:    log,
	}

	c.initInfrastructure()
	c.initUseCases()
	c.initHandlers()

	return c
}

func (c *Container) initInfrastructure() {
	c.repos = &repositories{
		userRepo:   repository.NewUserRepository(c.db),
		subRepo:    repository.NewSubscriptionRepository(c.db),
		orderRepo:  repository.NewOrderRepository(c.db),
		recordRepo: repository.NewGenerationRecordRepository(c.db),
	}

	c.verifier = identity.NewVerifier(c.cfg.Identity, c.log.Named("identity"))

	// Without Redis the generation endpoint runs unthrottled. Fine for
	// single-instance development; production config sets a Redis host.
	if c.cfg.Redis.Enabled() {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
		c.rateLimiter = ratelimit.NewRedisRateLimiter(c.redis)
	} else {
		c.log.Warnw("redis not configured; generation rate limiting disabled")
		c.rateLimiter = ratelimit.Unlimited{}
	}
}

func (c *Container) initUseCases() {
	checker := entitlement.NewChecker()
	txRunner := db.NewTransactionManager(c.db)
	gateway := infraPayment.NewGateway(c.cfg.Gateway, c.log.Named("payment"))
	genaiClient := genai.NewClient(c.cfg.Studio, c.log.Named("genai"))

	c.ucs = &allUseCases{
		syncProfileUC: authUsecases.NewSyncProfileUseCase(
			c.repos.userRepo, c.repos.subRepo, checker, txRunner,
			c.cfg.Billing.StarterCredits, c.log,
		),
		getProfileUC: authUsecases.NewGetProfileUseCase(
			c.repos.userRepo, c.repos.subRepo, checker, c.log,
		),

		conceptUC: studioUsecases.NewGenerateConceptUseCase(
			c.repos.userRepo, c.repos.subRepo, checker, genaiClient,
			c.cfg.Studio.ShotTiers, c.log,
		),
		generateUC: studioUsecases.NewGenerateImagesUseCase(
			c.repos.userRepo, c.repos.subRepo, c.repos.recordRepo, checker,
			genaiClient, txRunner, c.cfg.Studio.ShotTiers,
			c.cfg.Billing.BillReturnedCount, c.log,
		),
		historyUC: studioUsecases.NewListHistoryUseCase(
			c.repos.userRepo, c.repos.recordRepo, c.log,
		),

		createOrderUC: billingUsecases.NewCreateOrderUseCase(
			c.repos.userRepo, c.repos.orderRepo, gateway, c.cfg.Billing, c.log,
		),
		callbackUC: billingUsecases.NewHandleCallbackUseCase(
			c.repos.orderRepo, c.repos.userRepo, c.repos.subRepo, gateway,
			txRunner, c.log,
		),
		listPaymentsUC: billingUsecases.NewListPaymentsUseCase(
			c.repos.userRepo, c.repos.orderRepo, c.log,
		),
	}
}

func (c *Container) initHandlers() {
	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(c.ucs.syncProfileUC, c.log),
		userHandler: handlers.NewUserHandler(c.ucs.getProfileUC, c.ucs.listPaymentsUC, c.log),
		studioHandler: handlers.NewStudioHandler(
			c.ucs.conceptUC, c.ucs.generateUC, c.ucs.historyUC, c.log,
		),
		paymentHandler: handlers.NewPaymentHandler(
			c.ucs.createOrderUC, c.ucs.callbackUC, c.cfg.Server.ClientBaseURL, c.log,
		),
	}
}

// Shutdown releases container-owned resources.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
