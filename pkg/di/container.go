package di

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/samiullah014/stan-task/application/serviceimpl"
	"github.com/samiullah014/stan-task/domain/ports"
	"github.com/samiullah014/stan-task/domain/repositories"
	"github.com/samiullah014/stan-task/domain/services"
	"github.com/samiullah014/stan-task/infrastructure/memory"
	"github.com/samiullah014/stan-task/infrastructure/messaging"
	natspkg "github.com/samiullah014/stan-task/infrastructure/nats"
	"github.com/samiullah014/stan-task/infrastructure/postgres"
	redispkg "github.com/samiullah014/stan-task/infrastructure/redis"
	wsfeed "github.com/samiullah014/stan-task/infrastructure/websocket"
	"github.com/samiullah014/stan-task/interfaces/api/handlers"
	"github.com/samiullah014/stan-task/interfaces/api/routes"
	"github.com/samiullah014/stan-task/pkg/config"
	"github.com/samiullah014/stan-task/pkg/logger"
	"github.com/samiullah014/stan-task/pkg/scheduler"
)

const storeMonitorJobID = "store-monitor"

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	NATSClient  *natspkg.Client
	RedisClient *redispkg.Client
	TaskFeed    *wsfeed.TaskFeed

	redisEvents *messaging.RedisTaskEventPublisher

	// Ports
	TaskEventPublisher ports.TaskEventPublisher

	// Repositories
	TaskRepository repositories.TaskRepository

	// Services
	TaskService         services.TaskService
	StoreMonitorService *serviceimpl.StoreMonitorServiceImpl

	// Scheduler
	JobScheduler scheduler.JobScheduler
}

func NewContainer() *Container {
	return &Container{}
}

// NewContainerWithConfig skips env loading; logger setup stays with the caller.
func NewContainerWithConfig(cfg *config.Config) *Container {
	return &Container{Config: cfg}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	return c.initComponents()
}

func (c *Container) initComponents() error {
	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	return c.initScheduler()
}

// InitializeComponents wires everything after config and logger; used with
// NewContainerWithConfig.
func (c *Container) InitializeComponents() error {
	if c.Config == nil {
		return fmt.Errorf("config is not set")
	}
	return c.initComponents()
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	if c.Config.Store.Driver == config.StoreDriverPostgres {
		db, err := postgres.NewDatabase(postgres.DatabaseConfig{
			DSN:          c.Config.Database.DSN(),
			MaxOpenConns: c.Config.Database.MaxOpenConns,
			MaxIdleConns: c.Config.Database.MaxIdleConns,
			LogLevel:     c.Config.Database.LogLevel,
		})
		if err != nil {
			return err
		}
		c.DB = db
		logger.Info("Database connected", "driver", c.Config.Store.Driver)

		if err := postgres.Migrate(db); err != nil {
			return err
		}
		logger.Info("Database migrated")
	}

	// Initialize Redis Client (optional - graceful degradation)
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(redispkg.ClientConfig{
			URL:      c.Config.Redis.URL,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
		if err != nil {
			logger.Warn("Redis client initialization failed (Redis task events disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
		}
	}

	c.initMessagingPorts()
	return nil
}

// initMessagingPorts builds the task event fan-out: NATS and Redis Pub/Sub
// when configured and reachable, the websocket feed when enabled.
func (c *Container) initMessagingPorts() {
	var publishers []ports.TaskEventPublisher

	if c.Config.NATS.URL == "" {
		logger.Info("NATS task events disabled (NATS_URL not set)")
	} else {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{
			URL:  c.Config.NATS.URL,
			Name: c.Config.App.Name,
		})
		if err != nil {
			logger.Warn("NATS client initialization failed (task events disabled)", "error", err)
		} else {
			c.NATSClient = natsClient
			publishers = append(publishers, messaging.NewNATSTaskEventPublisher(natsClient.Conn(), c.Config.NATS.SubjectPrefix))
			logger.Info("NATS task events enabled", "url", c.Config.NATS.URL, "prefix", c.Config.NATS.SubjectPrefix)
		}
	}

	if c.RedisClient != nil {
		c.redisEvents = messaging.NewRedisTaskEventPublisher(c.RedisClient, c.Config.Redis.ChannelPrefix)
		publishers = append(publishers, c.redisEvents)
		logger.Info("Redis task events enabled", "prefix", c.Config.Redis.ChannelPrefix)
	}

	if c.Config.Feed.Enabled {
		c.TaskFeed = wsfeed.NewTaskFeed()
		publishers = append(publishers, c.TaskFeed)
		logger.Info("Task feed enabled", "path", "/ws/tasks")
	}

	switch len(publishers) {
	case 0:
		c.TaskEventPublisher = messaging.NewNoopTaskEventPublisher()
	case 1:
		c.TaskEventPublisher = publishers[0]
	default:
		c.TaskEventPublisher = messaging.NewFanoutTaskEventPublisher(publishers...)
	}
}

func (c *Container) initRepositories() error {
	switch c.Config.Store.Driver {
	case config.StoreDriverPostgres:
		c.TaskRepository = postgres.NewTaskRepository(c.DB)
	case config.StoreDriverMemory:
		c.TaskRepository = memory.NewTaskRepository(nil)
		logger.Warn("Using in-memory task store; data is lost on restart")
	default:
		return fmt.Errorf("unknown store driver %q", c.Config.Store.Driver)
	}

	logger.Info("Repositories initialized", "driver", c.Config.Store.Driver)
	return nil
}

func (c *Container) initServices() error {
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.TaskEventPublisher)
	c.StoreMonitorService = serviceimpl.NewStoreMonitorService(c.TaskRepository, c.Config.Store.Driver)
	logger.Info("Services initialized")
	return nil
}

func (c *Container) initScheduler() error {
	c.JobScheduler = scheduler.NewJobScheduler()

	if err := c.JobScheduler.AddIntervalJob(storeMonitorJobID, c.Config.Store.CheckInterval, c.StoreMonitorService.Run); err != nil {
		return fmt.Errorf("register store monitor: %w", err)
	}

	c.JobScheduler.Start()
	logger.Info("Store monitor scheduled", "every", c.Config.Store.CheckInterval.String())
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	// Stop scheduler
	if c.JobScheduler != nil && c.JobScheduler.IsRunning() {
		c.JobScheduler.Stop()
	}

	// Disconnect task feed clients
	if c.TaskFeed != nil {
		c.TaskFeed.CloseAll()
	}

	// Close NATS connection
	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		} else {
			logger.Info("NATS connection closed")
		}
	}

	// Flush queued Redis events, then close the connection
	if c.redisEvents != nil {
		c.redisEvents.Close()
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := postgres.Close(c.DB); err != nil {
			logger.Warn("Failed to close database connection", "error", err)
		} else {
			logger.Info("Database connection closed")
		}
	}

	logger.Info("Cleanup completed")
	return logger.Close()
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		TaskService:         c.TaskService,
		StoreMonitorService: c.StoreMonitorService,
		AppName:             c.Config.App.Name,
		EventsEnabled:       c.NATSClient != nil || c.RedisClient != nil,
		TaskFeed:            c.TaskFeed,
	}
}

func (c *Container) GetRouteOptions() routes.Options {
	return routes.Options{
		AppName:           c.Config.App.Name,
		CORSOrigins:       c.Config.App.CORSOrigins,
		RejectEmptyUpdate: c.Config.Tasks.RejectEmptyUpdate,
	}
}
