package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	SkiData   SkiDataConfig
	Pricing   PricingConfig
	Cache     CacheConfig
	Telemetry TelemetryConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Zurich"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Zurich"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

// An empty address keeps the cache in process memory.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// No brokers disables the invalidation broadcast.
type KafkaConfig struct {
	Brokers           []string `envconfig:"KAFKA_BROKERS"`
	InvalidationTopic string   `envconfig:"KAFKA_INVALIDATION_TOPIC" default:"cache-invalidation"`
	GroupID           string   `envconfig:"KAFKA_GROUP_ID" default:"lifepass-admin"`
	Buffer            int      `envconfig:"KAFKA_BUFFER" default:"256"`
}

type SkiDataConfig struct {
	BaseURL     string        `envconfig:"SKIDATA_BASE_URL" required:"true"`
	Timeout     time.Duration `envconfig:"SKIDATA_TIMEOUT" default:"5s"`
	TokenSecret string        `envconfig:"SKIDATA_TOKEN_SECRET" required:"true"`
	TokenTTL    time.Duration `envconfig:"SKIDATA_TOKEN_TTL" default:"5m"`
	Issuer      string        `envconfig:"SKIDATA_TOKEN_ISSUER" default:"lifepass-admin"`
	Audience    string        `envconfig:"SKIDATA_TOKEN_AUDIENCE" default:"skidata"`
}

type PricingConfig struct {
	MaxConcurrency int           `envconfig:"PRICING_MAX_CONCURRENCY" default:"4"`
	MaxAttempts    int           `envconfig:"PRICING_MAX_ATTEMPTS" default:"3"`
	BaseBackoff    time.Duration `envconfig:"PRICING_BASE_BACKOFF" default:"200ms"`
	MaxBackoff     time.Duration `envconfig:"PRICING_MAX_BACKOFF" default:"2s"`
	VATRate        string        `envconfig:"PRICING_VAT_RATE" default:"0.081"`
	VATName        string        `envconfig:"PRICING_VAT_NAME" default:"Value added tax"`
	VATShortName   string        `envconfig:"PRICING_VAT_SHORT_NAME" default:"VAT"`
	Currency       string        `envconfig:"PRICING_CURRENCY" default:"CHF"`
}

type CacheConfig struct {
	TTL  time.Duration `envconfig:"CACHE_TTL" default:"1h"`
	Tags []string      `envconfig:"CACHE_TAGS" default:"catalog"`
}

type TelemetryConfig struct {
	Enabled        bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName    string `envconfig:"TELEMETRY_SERVICE_NAME" default:"lifepass-admin"`
	JaegerEndpoint string `envconfig:"JAEGER_ENDPOINT" default:"http://jaeger:14268/api/traces"`
}

type SchedulerConfig struct {
	SweepInterval time.Duration `envconfig:"SCHEDULER_SWEEP_INTERVAL" default:"5m"`
	AllocationTTL time.Duration `envconfig:"SCHEDULER_ALLOCATION_TTL" default:"30m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDBConfig reads only the DB_* variables, for tools that never reach SkiData.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := load(&cfg); err != nil {
		return DBConfig{}, err
	}
	return cfg, nil
}

func load(spec any) error {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	if err := envconfig.Process("", spec); err != nil {
		return fmt.Errorf("failed to process env config: %w", err)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Zurich",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Zurich",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Kafka: KafkaConfig{
			InvalidationTopic: "cache-invalidation",
			GroupID:           "lifepass-admin-test",
			Buffer:            16,
		},
		SkiData: SkiDataConfig{
			BaseURL:     "http://127.0.0.1:0",
			Timeout:     2 * time.Second,
			TokenSecret: "test-secret",
			TokenTTL:    time.Minute,
			Issuer:      "lifepass-admin",
			Audience:    "skidata",
		},
		Pricing: PricingConfig{
			MaxConcurrency: 4,
			MaxAttempts:    3,
			BaseBackoff:    time.Millisecond,
			MaxBackoff:     5 * time.Millisecond,
			VATRate:        "0.081",
			VATName:        "Value added tax",
			VATShortName:   "VAT",
			Currency:       "CHF",
		},
		Cache: CacheConfig{
			TTL:  time.Hour,
			Tags: []string{"catalog"},
		},
		Scheduler: SchedulerConfig{
			SweepInterval: time.Hour,
			AllocationTTL: 30 * time.Minute,
		},
	}
}
