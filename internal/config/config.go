package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Mist    MistConfig
	Events  EventsConfig
	Tracing TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	JwtSecret          string
}

type StoreConfig struct {
	Driver    string // "redis" or "memory"
	RedisURL  string
	Timeout   time.Duration
	KeyPrefix string
	TTL       time.Duration // 0 = keys never expire
}

type MistConfig struct {
	APIToken    string
	DefaultHost string
	Timeout     time.Duration
}

type EventsConfig struct {
	NatsURL    string
	AuditTopic string
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

const DefaultMistHost = "api.ac2.mist.com"

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
		},
		Store: StoreConfig{
			Driver:    getEnv("CONTEXT_STORE", "redis"),
			RedisURL:  getEnv("REDIS_URL", "redis://localhost:6379"),
			Timeout:   getEnvAsDuration("REDIS_TIMEOUT", 3*time.Second),
			KeyPrefix: getEnv("CONTEXT_KEY_PREFIX", "mist:context:"),
			TTL:       getEnvAsDuration("CONTEXT_TTL", 0),
		},
		Mist: MistConfig{
			APIToken:    getEnv("MIST_API_TOKEN", ""),
			DefaultHost: getEnv("MIST_DEFAULT_HOST", DefaultMistHost),
			Timeout:     getEnvAsDuration("MIST_HTTP_TIMEOUT", 30*time.Second),
		},
		Events: EventsConfig{
			NatsURL:    getEnv("NATS_URL", ""),
			AuditTopic: getEnv("AUDIT_TOPIC", "PROVISIONING_AUDIT"),
		},
		Tracing: TracingConfig{
			Enabled:  getEnvAsBool("OTEL_ENABLED", false),
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("5s") or a bare number of seconds.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if d, err := time.ParseDuration(strValue); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
