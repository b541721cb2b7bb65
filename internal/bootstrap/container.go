package bootstrap

import (
	"context"

	"mist-provisioning-be/internal/config"
	"mist-provisioning-be/internal/controller"
	"mist-provisioning-be/internal/pkg/logger"
	"mist-provisioning-be/internal/repository/contract"
	"mist-provisioning-be/internal/repository/implementation"
	"mist-provisioning-be/internal/repository/memory"
	"mist-provisioning-be/internal/service"
	"mist-provisioning-be/pkg/mist"

	pktNats "mist-provisioning-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	StatusController      controller.IStatusController
	OrgController         controller.IOrgController
	SiteController        controller.ISiteController
	NetworkController     controller.INetworkController
	ApplicationController controller.IApplicationController
	HubProfileController  controller.IHubProfileController
	InventoryController   controller.IInventoryController
	NmsController         controller.INmsController

	// Background Services (Exposed for main.go to run)
	AuditConsumer service.IAuditConsumer

	Logger logger.ILogger

	closers []func()
}

// Close releases connections opened by NewContainer.
func (c *Container) Close() {
	for _, fn := range c.closers {
		fn()
	}
	_ = c.Logger.Sync()
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	return NewContainerWith(cfg, sysLogger, nil, nil)
}

// NewContainerWith wires the object graph around an explicit logger, store and
// engine. A nil store or engine is built from cfg.
func NewContainerWith(cfg *config.Config, sysLogger logger.ILogger, store contract.ContextStore, engine mist.IEngine) *Container {
	var closers []func()

	// 1. Context store
	if store == nil {
		var closeStore func()
		store, closeStore = newContextStore(cfg, sysLogger)
		if closeStore != nil {
			closers = append(closers, closeStore)
		}
	}

	// 2. Mist engine
	if engine == nil {
		if cfg.Mist.APIToken == "" {
			sysLogger.Warn("BOOT", "MIST_API_TOKEN is empty, upstream calls will be rejected", nil)
		}
		engine = mist.NewEngine(cfg.Mist.APIToken, cfg.Mist.Timeout)
	}

	// 3. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	closers = append(closers, func() { _ = pubSub.Close() })

	// NATS is optional; audit events are still logged without it.
	var forwarder service.EventForwarder
	if cfg.Events.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL)
		if err != nil {
			sysLogger.Warn("BOOT", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
		} else {
			forwarder = natsPub
			closers = append(closers, natsPub.Close)
		}
	}

	auditPublisher := service.NewAuditPublisher(pubSub, cfg.Events.AuditTopic, sysLogger)
	auditConsumer := service.NewAuditConsumer(pubSub, cfg.Events.AuditTopic, forwarder, sysLogger)

	// 4. Services
	sessionService := service.NewSessionService(store, engine, auditPublisher, sysLogger, cfg.Mist.DefaultHost)
	siteService := service.NewSiteService(sessionService, engine)
	networkService := service.NewNetworkService(sessionService, engine)
	applicationService := service.NewApplicationService(sessionService, engine)
	hubProfileService := service.NewHubProfileService(sessionService, engine)
	inventoryService := service.NewInventoryService(sessionService, engine)
	nmsService := service.NewNmsService(store, auditPublisher, sysLogger)

	// 5. Controllers
	return &Container{
		StatusController:      controller.NewStatusController(store),
		OrgController:         controller.NewOrgController(sessionService),
		SiteController:        controller.NewSiteController(siteService),
		NetworkController:     controller.NewNetworkController(networkService),
		ApplicationController: controller.NewApplicationController(applicationService),
		HubProfileController:  controller.NewHubProfileController(hubProfileService),
		InventoryController:   controller.NewInventoryController(inventoryService),
		NmsController:         controller.NewNmsController(nmsService),

		AuditConsumer: auditConsumer,
		Logger:        sysLogger,
		closers:       closers,
	}
}

func newContextStore(cfg *config.Config, sysLogger logger.ILogger) (contract.ContextStore, func()) {
	if cfg.Store.Driver == "memory" {
		sysLogger.Info("BOOT", "Using in-memory context store", nil)
		return memory.NewContextStore(), nil
	}

	opt, err := redis.ParseURL(cfg.Store.RedisURL)
	if err != nil {
		sysLogger.Warn("BOOT", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{
			Addr: cfg.Store.RedisURL,
		}
	}
	opt.DialTimeout = cfg.Store.Timeout
	opt.ReadTimeout = cfg.Store.Timeout
	opt.WriteTimeout = cfg.Store.Timeout

	rdb := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Store.Timeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		// Requests will surface STORE_UNAVAILABLE until Redis comes back.
		sysLogger.Warn("BOOT", "Failed to connect to Redis", map[string]interface{}{"addr": opt.Addr, "error": err.Error()})
	}

	return implementation.NewRedisContextStore(rdb, cfg.Store.KeyPrefix, cfg.Store.TTL, cfg.Store.Timeout), func() { _ = rdb.Close() }
}
