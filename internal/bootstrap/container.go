package bootstrap

import (
	"context"
	"fmt"
	"time"

	"flowa-be/internal/config"
	"flowa-be/internal/controller"
	"flowa-be/internal/handler"
	"flowa-be/internal/pkg/logger"
	"flowa-be/internal/pkg/mailer"
	"flowa-be/internal/pkg/serverutils"
	"flowa-be/internal/repository/memory"
	"flowa-be/internal/repository/unitofwork"
	"flowa-be/internal/service"
	"flowa-be/internal/websocket"
	"flowa-be/pkg/events"
	"flowa-be/pkg/llm/factory"
	"flowa-be/pkg/metrics"
	pktNats "flowa-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const oauthStateTTL = 10 * time.Minute

type Container struct {
	// Controllers
	HealthController      controller.IHealthController
	AuthController        controller.IAuthController
	UserController        controller.IUserController
	OAuthController       controller.IOAuthController
	BrandController       controller.IBrandController
	ThemeController       controller.IThemeController
	ProductController     controller.IProductController
	ChatController        controller.IChatController
	ContentController     controller.IContentController
	SocialController      controller.ISocialController
	AnalyticsController   controller.IAnalyticsController
	SettingsController    controller.ISettingsController
	IntegrationController controller.IIntegrationController

	// Realtime activity
	ActivityHandler *handler.ActivityHandler
	ActivityService *service.ActivityService
	WebSocketHub    *websocket.Hub

	Metrics *metrics.Metrics
	Logger  logger.ILogger

	closers []func()
}

// NewContainer wires every layer. db may be nil when STORAGE=memory.
func NewContainer(cfg *config.Config, db *gorm.DB, sysLogger logger.ILogger) (*Container, error) {
	c := &Container{Logger: sysLogger}

	// 1. Core Facades
	jwtSecret, usedDefault, ok := cfg.ResolveJwtSecret()
	if !ok {
		return nil, fmt.Errorf("JWT_SECRET is required in %s", cfg.App.Environment)
	}
	if usedDefault {
		sysLogger.Warn("BOOTSTRAP", "JWT_SECRET not set, using development secret", nil)
	}
	tokens := service.TokenIssuer{Secret: jwtSecret, TTL: cfg.Auth.TokenTTL}
	auth := serverutils.NewJwtMiddleware(jwtSecret)

	uowFactory, err := newRepositoryFactory(cfg, db, sysLogger)
	if err != nil {
		return nil, err
	}

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		sysLogger,
	)

	providers, err := factory.NewRegistry(cfg.Generation.DefaultModel, "openai", "anthropic", "google", "deepseek")
	if err != nil {
		return nil, err
	}

	c.Metrics = metrics.NewMetrics("flowa")

	// 2. Event Bus
	publisher, subscriber := c.newEventBus(cfg, sysLogger)
	activity := service.NewActivityEmitter(publisher, sysLogger)

	// 3. Realtime fan-out
	wsLogger := logger.NewIsolatedLogger(cfg.App.ActivityLogPath)
	rdb := c.newRedis(cfg, sysLogger)
	c.WebSocketHub = websocket.NewHub(rdb, wsLogger)
	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.WebSocketHub.Run(hubCtx)
	c.closers = append(c.closers, stopHub)

	c.ActivityService = service.NewActivityService(subscriber, c.WebSocketHub, wsLogger)
	if err := c.ActivityService.Start(); err != nil {
		sysLogger.Warn("BOOTSTRAP", "Activity feed disabled", map[string]interface{}{"error": err.Error()})
	}
	c.ActivityHandler = handler.NewActivityHandler(c.WebSocketHub, jwtSecret, wsLogger)

	// 4. Services
	authService := service.NewAuthService(uowFactory, memory.NewPendingRegistrationRepository(), emailService, tokens, activity, sysLogger)
	userService := service.NewUserService(uowFactory, tokens)
	oauthService := service.NewOAuthService(uowFactory, cfg.OAuth, memory.NewStateStore(oauthStateTTL), tokens, activity, sysLogger)
	brandService := service.NewBrandService(uowFactory, sysLogger)
	themeService := service.NewThemeService(uowFactory)
	productService := service.NewProductService(uowFactory)
	chatService := service.NewChatService(uowFactory, providers, cfg.Generation, activity, c.Metrics, sysLogger)
	contentService := service.NewContentService(uowFactory, providers, cfg.Generation, activity, c.Metrics, sysLogger)
	socialService := service.NewSocialService(uowFactory, activity, sysLogger)
	analyticsService := service.NewAnalyticsService(uowFactory)
	settingsService := service.NewSettingsService(uowFactory, sysLogger)
	integrationService := service.NewIntegrationService(uowFactory)

	// 5. Controllers
	c.HealthController = controller.NewHealthController()
	c.AuthController = controller.NewAuthController(authService)
	c.UserController = controller.NewUserController(userService, auth)
	c.OAuthController = controller.NewOAuthController(oauthService)
	c.BrandController = controller.NewBrandController(brandService, auth)
	c.ThemeController = controller.NewThemeController(themeService, auth)
	c.ProductController = controller.NewProductController(productService, auth)
	c.ChatController = controller.NewChatController(chatService, auth)
	c.ContentController = controller.NewContentController(contentService, auth)
	c.SocialController = controller.NewSocialController(socialService, auth)
	c.AnalyticsController = controller.NewAnalyticsController(analyticsService, auth)
	c.SettingsController = controller.NewSettingsController(settingsService, auth)
	c.IntegrationController = controller.NewIntegrationController(integrationService, auth)

	return c, nil
}

// Close releases the bus, Redis and the hub loop in reverse order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func newRepositoryFactory(cfg *config.Config, db *gorm.DB, log logger.ILogger) (unitofwork.RepositoryFactory, error) {
	switch cfg.App.Storage {
	case "memory":
		log.Info("BOOTSTRAP", "Using in-memory storage", nil)
		return memory.NewRepositoryFactory(memory.NewStore()), nil
	case "postgres", "":
		if db == nil {
			return nil, fmt.Errorf("postgres storage selected without a database connection")
		}
		return unitofwork.NewRepositoryFactory(db), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.App.Storage)
	}
}

// newEventBus prefers NATS JetStream and falls back to the in-process
// channel bus when NATS is disabled or unreachable.
func (c *Container) newEventBus(cfg *config.Config, log logger.ILogger) (events.Publisher, events.Subscriber) {
	if cfg.App.EventTransport == "nats" {
		pub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err == nil {
			sub, subErr := pktNats.NewSubscriber(cfg.App.NatsURL, func(subject string, err error) {
				log.Warn("EVENTS", "Event handling failed", map[string]interface{}{"subject": subject, "error": err.Error()})
			})
			if subErr == nil {
				c.closers = append(c.closers, pub.Close, sub.Close)
				log.Info("BOOTSTRAP", "Using NATS event bus", map[string]interface{}{"url": cfg.App.NatsURL})
				return pub, sub
			}
			pub.Close()
			err = subErr
		}
		log.Warn("BOOTSTRAP", "NATS unavailable, falling back to in-process events", map[string]interface{}{"error": err.Error()})
	}

	bus := events.NewChannelBus(watermill.NewStdLogger(false, false))
	c.closers = append(c.closers, func() { _ = bus.Close() })
	return bus, bus
}

func (c *Container) newRedis(cfg *config.Config, log logger.ILogger) *redis.Client {
	if cfg.App.RedisURL == "" {
		return nil
	}
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Warn("BOOTSTRAP", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("BOOTSTRAP", "Redis unreachable, activity stays local to this instance", map[string]interface{}{"error": err.Error()})
		_ = rdb.Close()
		return nil
	}
	c.closers = append(c.closers, func() { _ = rdb.Close() })
	return rdb
}
