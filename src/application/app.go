package application

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"video-fetch-be/src/application/config"
	"video-fetch-be/src/application/executor"
	"video-fetch-be/src/application/jobs/advance"
	"video-fetch-be/src/application/jobs/job_router"
	"video-fetch-be/src/application/jobs/verify"
	"video-fetch-be/src/application/links"
	linkentity "video-fetch-be/src/application/links/entity"
	"video-fetch-be/src/application/links/provider"
	"video-fetch-be/src/application/publish"
	requests "video-fetch-be/src/application/requests/entity"
	requeststore "video-fetch-be/src/application/requests/store"
	"video-fetch-be/src/application/requests/tracker"
	"video-fetch-be/src/application/server"
	"video-fetch-be/src/application/videos/cache"
	videos "video-fetch-be/src/application/videos/entity"
	"video-fetch-be/src/application/videos/metadata"
	"video-fetch-be/src/application/worker"
	"video-fetch-be/src/lib/cerr"

	"github.com/apex/log"
	"github.com/streadway/amqp"
	"golang.org/x/time/rate"
)

func ensureOk(err error) {
	if err != nil {
		panic(err)
	}
}

type App struct {
	workers    []worker.QueueWorker
	httpServer *http.Server
	closers    []func() error
}

func NewApp(cfg config.Config) App {
	consumerConn, err := amqp.Dial(cfg.RabbitMQURL)
	ensureOk(err)
	producerConn, err := amqp.Dial(cfg.RabbitMQURL)
	ensureOk(err)

	publisher, err := publish.NewRabbitMQPublisher(producerConn, cfg.QueueName)
	ensureOk(err)

	requestTracker := tracker.NewTracker(newRequestStore(cfg))
	providerClient := &http.Client{Timeout: cfg.ProviderTimeout}

	fetcher, err := metadata.NewYoutubeFetcher(cfg.YoutubeAPIKey, cfg.YoutubeAPIEndpoint, cfg.ProviderTimeout, newMetadataCache(cfg))
	ensureOk(err)

	resolver := links.NewResolver(fetcher, newProviders(cfg, providerClient), cfg.ProviderTimeout)

	router := job_router.NewJobRouter(
		requestTracker,
		publisher,
		verify.NewJobHandler(requestTracker, providerClient, cfg.ProviderTimeout),
		advance.NewJobHandler(requestTracker, cfg.ProgressStepDelay),
	)

	workers := []worker.QueueWorker{}
	for i := 0; i < cfg.NumWorkers; i++ {
		queueWorker, err := worker.NewQueueWorkerFromConnection(consumerConn, cfg.QueueName, fmt.Sprintf("worker-%d", i), router)
		ensureOk(err)
		workers = append(workers, queueWorker)
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	dispatcher := server.NewDispatcher(fetcher, resolver, requestTracker, publisher, limiter)

	return App{
		workers: workers,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler:           dispatcher,
			ReadHeaderTimeout: 10 * time.Second,
		},
		closers: []func() error{publisher.Close, consumerConn.Close, producerConn.Close},
	}
}

func (a *App) Start() {
	for _, queueWorker := range a.workers {
		go func(worker worker.QueueWorker) {
			err := worker.Start()
			if err != nil {
				cerr.Log(cerr.Wrap(err).Error("Failed to start worker!"))
			}
		}(queueWorker)
	}

	go func() {
		log.WithField("addr", a.httpServer.Addr).Info("Starting HTTP server")
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			cerr.Log(cerr.Wrap(err).Error("HTTP server stopped"))
		}
	}()
}

func (a *App) Stop(ctx context.Context) {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		cerr.Log(cerr.Wrap(err).Error("Failed to shut down HTTP server"))
	}

	for _, closer := range a.closers {
		if err := closer(); err != nil {
			cerr.Warn(cerr.Wrap(err).Error("Failed to close connection"))
		}
	}
}

func newRequestStore(cfg config.Config) requests.RequestStore {
	switch cfg.RequestStore {
	case config.SQLiteStore:
		store, err := requeststore.NewSQLiteRequestStore(cfg.SQLitePath)
		ensureOk(err)
		return store
	default:
		return requeststore.NewDynamoDBRequestStore(cfg.Environment, cfg.DownloadRequestsTable)
	}
}

// newMetadataCache returns nil when Redis isn't configured, the fetcher then always asks YouTube
func newMetadataCache(cfg config.Config) videos.MetadataCache {
	if cfg.RedisURL == "" {
		return nil
	}

	redisCache, err := cache.NewRedisMetadataCache(cfg.RedisURL, cfg.MetadataCacheTTL)
	ensureOk(err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		cerr.Warn(cerr.Wrap(err).Error("Redis isn't reachable yet, video info will skip the cache until it is"))
	}

	return redisCache
}

func newProviders(cfg config.Config, client *http.Client) []linkentity.Provider {
	invidiousHosts := cfg.InvidiousHosts
	if len(invidiousHosts) == 0 {
		invidiousHosts = provider.DefaultInvidiousHosts
	}

	providers := []linkentity.Provider{
		provider.NewRapidAPIProvider(client, cfg.RapidAPIEndpoint, cfg.RapidAPIHost, cfg.RapidAPIKey),
		provider.NewInvidiousProvider(client, invidiousHosts),
		provider.NewNativeProvider(client),
	}

	if cfg.YoutubeDLBinPath != "" {
		providers = append(providers, provider.NewYoutubeDLProvider(cfg.YoutubeDLBinPath, executor.BinaryFileExecutor{}))
	}

	return providers
}
