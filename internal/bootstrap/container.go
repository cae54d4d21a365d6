package bootstrap

import (
	"context"
	"fmt"

	"ai-council-be/internal/config"
	"ai-council-be/internal/controller"
	"ai-council-be/internal/handler"
	"ai-council-be/internal/pkg/logger"
	"ai-council-be/internal/pkg/metrics"
	"ai-council-be/internal/repository/unitofwork"
	"ai-council-be/internal/service"
	"ai-council-be/internal/websocket"
	"ai-council-be/pkg/agents"
	"ai-council-be/pkg/council"
	"ai-council-be/pkg/embedding"
	"ai-council-be/pkg/events"
	"ai-council-be/pkg/llm"
	"ai-council-be/pkg/llm/factory"
	"ai-council-be/pkg/recommend"
	"ai-council-be/pkg/usage"

	pktNats "ai-council-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const defaultOllamaChatModel = "llama3"

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	AgentController   controller.IAgentController
	CouncilController controller.ICouncilController
	MemoryController  controller.IMemoryController

	// Realtime gateway
	CouncilGateway *handler.CouncilGateway
	WebSocketHub   *websocket.Hub

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger   logger.ILogger
	Registry *prometheus.Registry
	Tracker  *usage.Tracker

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c := &Container{Logger: sysLogger}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)
	c.Registry = registry

	// 2. AI providers. A missing OpenAI key stops startup here.
	completer, err := newCompleter(cfg.Ai)
	if err != nil {
		return nil, fmt.Errorf("llm provider: %w", err)
	}
	embedBaseURL := cfg.Ai.OpenAIBaseURL
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embedBaseURL = cfg.Ai.OllamaBaseURL
	}
	embedder, err := embedding.NewProvider(cfg.Ai.EmbeddingProvider, embedBaseURL, cfg.Ai.EmbeddingModel, cfg.Ai.OpenAIKey)
	if err != nil {
		return nil, fmt.Errorf("embedding provider: %w", err)
	}
	sysLogger.Info("Bootstrap", "AI providers ready", map[string]interface{}{
		"llm":       cfg.Ai.LLMProvider,
		"embedding": embedder.Name(),
	})

	// 3. Event Bus: in-process always, NATS when reachable
	bus := events.NewLocalBus(events.DefaultTopic, watermill.NewStdLogger(false, false))
	c.closers = append(c.closers, func() { _ = bus.Close() })
	publisher := events.Fanout{bus}
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn("Bootstrap", "NATS unavailable, events stay in-process", map[string]interface{}{"error": err})
		} else {
			publisher = append(publisher, natsPub)
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 4. Redis for cross-instance rooms
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err})
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to Redis, rooms are local to this instance", map[string]interface{}{"error": err})
			_ = rdb.Close()
			rdb = nil
		} else {
			c.closers = append(c.closers, func() { _ = rdb.Close() })
		}
	}

	// 5. Services
	catalog := agents.Default()
	tracker := usage.NewTracker(sysLogger)
	c.Tracker = tracker

	orchestrator := council.NewOrchestrator(catalog, completer, service.NewCouncilTranscript(uowFactory), sysLogger,
		council.WithHistoryLimit(cfg.Council.HistoryLimit),
		council.WithInstrumentation(appMetrics),
	)

	authService := service.NewAuthService(uowFactory, publisher, cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry, sysLogger)
	agentService := service.NewAgentService(catalog, recommend.NewRecommender(catalog, completer, sysLogger), completer, tracker, uowFactory, sysLogger)
	councilService := service.NewCouncilService(uowFactory, catalog, publisher, sysLogger)
	chatService := service.NewCouncilChatService(councilService, orchestrator, tracker, publisher, cfg.Council.MaxMessageChars, sysLogger)
	memoryService := service.NewMemoryService(uowFactory, embedder, publisher, sysLogger)

	c.ConsumerService = service.NewConsumerService(bus, appMetrics, sysLogger)

	// 6. Gateway
	wsLogger := logger.NewIsolatedLogger(cfg.App.GatewayLogFilePath)
	c.WebSocketHub = websocket.NewHub(rdb, wsLogger)
	c.CouncilGateway = handler.NewCouncilGateway(c.WebSocketHub, councilService, chatService,
		cfg.Auth.JWTSecret, cfg.Council.EmissionPacing, appMetrics, wsLogger)

	// 7. Controllers
	c.AuthController = controller.NewAuthController(authService)
	c.AgentController = controller.NewAgentController(agentService)
	c.CouncilController = controller.NewCouncilController(councilService, chatService)
	c.MemoryController = controller.NewMemoryController(memoryService)

	return c, nil
}

func newCompleter(cfg config.AIConfig) (llm.Completer, error) {
	baseURL := cfg.OpenAIBaseURL
	model := cfg.LLMModel
	ollama := cfg.LLMProvider == "ollama"
	if ollama {
		baseURL = cfg.OllamaBaseURL
		if model == "" {
			model = defaultOllamaChatModel
		}
	}

	provider, err := factory.NewLLMProvider(cfg.LLMProvider, model, baseURL, cfg.OpenAIKey)
	if err != nil {
		return nil, err
	}
	return llm.NewCompletionClient(provider, llm.ClientConfig{
		MaxTokens:   cfg.LLMMaxTokens,
		PinnedModel: model,
		Unmetered:   ollama,
	}), nil
}

// Start runs the hub loop and the activity consumer until ctx ends.
func (c *Container) Start(ctx context.Context) error {
	go c.WebSocketHub.Run(ctx)
	return c.ConsumerService.Consume(ctx)
}

func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
