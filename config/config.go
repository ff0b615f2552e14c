package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	defaultBackendURL = "https://server-nuerpay.herokuapp.com"
	defaultPort       = "4000"
)

type Config struct {
	Env               string
	Port              string
	BackendURL        string
	BackendTimeout    time.Duration
	LogLevel          string
	PlaygroundEnabled bool
	AllowedOrigins    []string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	CacheTTL      time.Duration

	KafkaBroker string
	KafkaTopic  string

	QREnabled bool

	// EnvFileErr is set when a .env file exists but could not be read.
	EnvFileErr error
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) CacheEnabled() bool {
	return c.RedisHost != ""
}

func (c Config) EventsEnabled() bool {
	return c.KafkaBroker != ""
}

// Load reads the configuration from the environment. Outside production a
// .env file in the working directory is loaded first; a missing file is fine,
// any other failure is reported in EnvFileErr.
func Load() Config {
	env := getEnv("APP_ENV", "development")
	var envFileErr error
	if env != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			envFileErr = err
		}
	}

	return Config{
		Env:               env,
		Port:              getEnv("PORT", defaultPort),
		BackendURL:        strings.TrimRight(getEnv("BACKEND_URL", defaultBackendURL), "/"),
		BackendTimeout:    getDuration("BACKEND_TIMEOUT", 30*time.Second),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		PlaygroundEnabled: getBool("PLAYGROUND_ENABLED", env != "production"),
		AllowedOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RedisHost:         os.Getenv("REDIS_HOST"),
		RedisPort:         getEnv("REDIS_PORT", "6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		CacheTTL:          getDuration("CACHE_TTL", time.Minute),
		KafkaBroker:       os.Getenv("KAFKA_BROKER"),
		KafkaTopic:        getEnv("KAFKA_TOPIC", "gateway-events"),
		QREnabled:         getBool("QR_ENABLED", false),
		EnvFileErr:        envFileErr,
	}
}

func MustInitRedis(cfg Config, log *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost + ":" + cfg.RedisPort,
		Password: cfg.RedisPassword,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis", zap.String("addr", client.Options().Addr), zap.Error(err))
	}

	return client
}

func NewKafkaWriter(cfg Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
