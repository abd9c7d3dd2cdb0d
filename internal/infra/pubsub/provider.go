package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"riskmonitor/config"
	"riskmonitor/internal/domain/constants"
	"riskmonitor/internal/domain/service"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishChange(_ context.Context, event *service.ChangeEvent) error {
	p.logger.Debug("[NoopPubSub] Change publishing disabled, skipping",
		slog.String("key", event.Key),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// noopListener is used by transports that deliver through the push endpoint
type noopListener struct{}

func (noopListener) Listen(context.Context, func(service.ChangeEvent)) error {
	return nil
}

// PublisherParams holds dependencies for the change transport, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Redis  *goredis.Client `optional:"true"`
	Origin service.InstanceID
}

// TransportResult exposes both halves of the configured transport
type TransportResult struct {
	fx.Out

	Publisher service.ChangePublisher
	Listener  service.ChangeListener
}

// NewChangeTransport creates the publisher and listener based on configuration
func NewChangeTransport(params PublisherParams) (TransportResult, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNoop {
		logger.Info("PubSub not configured, using no-op publisher")

		return TransportResult{
			Publisher: &noopPublisher{logger: logger},
			Listener:  noopListener{},
		}, nil
	}

	var publisher service.ChangePublisher
	var listener service.ChangeListener = noopListener{}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return TransportResult{}, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return TransportResult{}, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return TransportResult{}, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		var err error
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return TransportResult{}, err
		}

	case constants.PubSubProviderRedis:
		if params.Redis == nil {
			return TransportResult{}, errors.New("redis configuration is required for redis provider")
		}
		if cfg.RedisChannel == "" {
			return TransportResult{}, errors.New("redis channel is required for redis provider")
		}
		logger.Info("Using redis Pub/Sub", slog.String("channel", cfg.RedisChannel))

		transport := NewRedisTransport(params.Redis, cfg.RedisChannel, logger)
		publisher, listener = transport, transport

	case constants.PubSubProviderKafka:
		if len(cfg.KafkaBrokers) == 0 || cfg.KafkaTopic == "" {
			return TransportResult{}, errors.New("brokers and topic are required for kafka provider")
		}
		groupID := cfg.KafkaGroupID
		if groupID == "" {
			groupID = "riskmonitor-" + string(params.Origin)
		}
		logger.Info("Using kafka Pub/Sub",
			slog.Any("brokers", cfg.KafkaBrokers),
			slog.String("topic", cfg.KafkaTopic),
			slog.String("group_id", groupID),
		)

		transport := NewKafkaTransport(cfg.KafkaBrokers, cfg.KafkaTopic, groupID, logger)
		publisher, listener = transport, transport

	default:
		return TransportResult{}, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing change publisher")

			return publisher.Close()
		},
	})

	return TransportResult{Publisher: publisher, Listener: listener}, nil
}

// ListenerParams holds dependencies for running the change listener
type ListenerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Listener service.ChangeListener
	Relay    *Relay
	Logger   *slog.Logger
}

// RunListener runs the transport's listen loop for the lifetime of the app
func RunListener(params ListenerParams) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()

				deliver := func(event service.ChangeEvent) { params.Relay.Forward(event) }
				if err := params.Listener.Listen(ctx, deliver); err != nil {
					params.Logger.Error("Change listener stopped", slog.Any("error", err))
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			wg.Wait()

			return nil
		},
	})
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewHub,
		NewRelay,
		NewChangeTransport,
	),
	fx.Invoke(RunListener),
)
