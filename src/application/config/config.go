package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"video-fetch-be/src/lib/env"
)

type StoreKind string

const (
	DynamoDBStore StoreKind = "dynamodb"
	SQLiteStore   StoreKind = "sqlite"
)

const (
	defaultRapidAPIHost     = "youtube-media-downloader.p.rapidapi.com"
	defaultRapidAPIEndpoint = "https://youtube-media-downloader.p.rapidapi.com/v2/video/details"
)

type Config struct {
	Environment env.Environment

	RabbitMQURL string
	QueueName   string
	NumWorkers  int

	HTTPPort       int
	RateLimitRPS   float64
	RateLimitBurst int

	YoutubeAPIKey      string
	YoutubeAPIEndpoint string
	RedisURL           string
	MetadataCacheTTL   time.Duration

	RapidAPIKey      string
	RapidAPIHost     string
	RapidAPIEndpoint string
	InvidiousHosts   []string
	YoutubeDLBinPath string
	ProviderTimeout  time.Duration

	RequestStore          StoreKind
	SQLitePath            string
	DownloadRequestsTable string
	ProgressStepDelay     time.Duration
}

// Load reads the process environment and panics on anything missing or malformed
func Load() Config {
	return LoadFrom(os.Getenv)
}

func LoadFrom(getenv func(string) string) Config {
	l := loader{getenv: getenv}

	environment, err := env.Parse(getenv("ENVIRONMENT"))
	ensureOk(err)

	return Config{
		Environment: environment,

		RabbitMQURL: l.getEnvOrPanic("RABBITMQ_URL"),
		QueueName:   l.getEnvOrPanic("RABBITMQ_QUEUE_NAME"),
		NumWorkers:  l.getInt("NUM_WORKERS", 1),

		HTTPPort:       l.getInt("HTTP_PORT", 8080),
		RateLimitRPS:   l.getFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: l.getInt("RATE_LIMIT_BURST", 20),

		YoutubeAPIKey:      getenv("YOUTUBE_API_KEY"),
		YoutubeAPIEndpoint: getenv("YOUTUBE_API_ENDPOINT"),
		RedisURL:           getenv("REDIS_URL"),
		MetadataCacheTTL:   l.getDuration("METADATA_CACHE_TTL", time.Hour),

		RapidAPIKey:      getenv("RAPIDAPI_KEY"),
		RapidAPIHost:     l.getString("RAPIDAPI_HOST", defaultRapidAPIHost),
		RapidAPIEndpoint: l.getString("RAPIDAPI_ENDPOINT", defaultRapidAPIEndpoint),
		InvidiousHosts:   l.getList("INVIDIOUS_HOSTS"),
		YoutubeDLBinPath: getenv("YOUTUBEDL_BIN_PATH"),
		ProviderTimeout:  l.getDuration("PROVIDER_TIMEOUT", 15*time.Second),

		RequestStore:          l.getStoreKind("REQUEST_STORE"),
		SQLitePath:            l.getString("SQLITE_PATH", "download_requests.db"),
		DownloadRequestsTable: l.getString("DOWNLOAD_REQUESTS_TABLE", "DownloadRequests"),
		ProgressStepDelay:     l.getDuration("PROGRESS_STEP_DELAY", 2*time.Second),
	}
}

func ensureOk(err error) {
	if err != nil {
		panic(err)
	}
}

type loader struct {
	getenv func(string) string
}

func (l loader) getEnvOrPanic(key string) string {
	val := l.getenv(key)
	if val == "" {
		panic(fmt.Sprintf("No env variable found for key %s", key))
	}

	return val
}

func (l loader) getString(key string, fallback string) string {
	val := l.getenv(key)
	if val == "" {
		return fallback
	}

	return val
}

func (l loader) getInt(key string, fallback int) int {
	val := l.getenv(key)
	if val == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		panic(fmt.Sprintf("Env variable %s must be a positive integer, got %q", key, val))
	}

	return parsed
}

func (l loader) getFloat(key string, fallback float64) float64 {
	val := l.getenv(key)
	if val == "" {
		return fallback
	}

	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil || parsed <= 0 {
		panic(fmt.Sprintf("Env variable %s must be a positive number, got %q", key, val))
	}

	return parsed
}

func (l loader) getDuration(key string, fallback time.Duration) time.Duration {
	val := l.getenv(key)
	if val == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(val)
	if err != nil || parsed < 0 {
		panic(fmt.Sprintf("Env variable %s must be a duration like 15s, got %q", key, val))
	}

	return parsed
}

// getList splits a comma separated value, empty entries are dropped
func (l loader) getList(key string) []string {
	values := []string{}
	for _, part := range strings.Split(l.getenv(key), ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}

	return values
}

func (l loader) getStoreKind(key string) StoreKind {
	switch StoreKind(l.getString(key, string(DynamoDBStore))) {
	case DynamoDBStore:
		return DynamoDBStore
	case SQLiteStore:
		return SQLiteStore
	default:
		panic(fmt.Sprintf("Env variable %s must be %q or %q", key, DynamoDBStore, SQLiteStore))
	}
}
