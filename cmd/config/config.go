package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	StoreAPI    StoreAPIConfig
	Auth        AuthConfig
	Checkout    CheckoutConfig
	Admin       AdminConfig
	Internal    InternalConfig
	Session     SessionConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type StoreAPIConfig struct {
	BaseURL string
	Timeout time.Duration
	// Consecutive failures before the circuit opens.
	FailureThreshold uint32
	OpenTimeout      time.Duration
	RegionCacheTTL   time.Duration
}

type AuthConfig struct {
	JWTSecret      string
	SessionExpTime time.Duration
}

type CheckoutConfig struct {
	PointValue         decimal.Decimal
	MaxPointsPerOrder  int64
	DefaultShippingFee int64
}

type AdminConfig struct {
	DraftExpiration time.Duration
}

type InternalConfig struct {
	APIKey string
	APIURL string
}

type SessionConfig struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

// Load reads configuration from the environment, after merging an optional .env file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getString("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getString("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 0),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getString("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getString("DB_USER", "root"),
			Password:        getString("DB_PASSWORD", ""),
			Name:            getString("DB_NAME", "storefront"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getString("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getString("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getString("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getString("RABBITMQ_USER", "guest"),
			Password: getString("RABBITMQ_PASSWORD", "guest"),
		},
		StoreAPI: StoreAPIConfig{
			BaseURL:          getString("STORE_API_URL", "http://localhost:9000"),
			Timeout:          getDuration("STORE_API_TIMEOUT", 8*time.Second),
			FailureThreshold: uint32(getInt("STORE_API_FAILURE_THRESHOLD", 5)),
			OpenTimeout:      getDuration("STORE_API_OPEN_TIMEOUT", 30*time.Second),
			RegionCacheTTL:   getDuration("STORE_API_REGION_CACHE_TTL", 6*time.Hour),
		},
		Auth: AuthConfig{
			JWTSecret:      getString("JWT_SECRET", ""),
			SessionExpTime: getDuration("SESSION_EXP_TIME", 24*time.Hour),
		},
		Checkout: CheckoutConfig{
			PointValue:         getDecimal("CHECKOUT_POINT_VALUE", decimal.NewFromInt(1)),
			MaxPointsPerOrder:  int64(getInt("CHECKOUT_MAX_POINTS_PER_ORDER", 500)),
			DefaultShippingFee: int64(getInt("CHECKOUT_DEFAULT_SHIPPING_FEE", 0)),
		},
		Admin: AdminConfig{
			DraftExpiration: getDuration("ADMIN_DRAFT_EXPIRATION", 24*time.Hour),
		},
		Internal: InternalConfig{
			APIKey: getString("INTERNAL_API_KEY", ""),
			APIURL: getString("INTERNAL_API_URL", "http://localhost:8080"),
		},
		Session: SessionConfig{
			IdleTTL:       getDuration("STOREFRONT_SESSION_IDLE_TTL", 2*time.Hour),
			SweepInterval: getDuration("STOREFRONT_SESSION_SWEEP_INTERVAL", 10*time.Minute),
		},
	}
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getDecimal(key string, def decimal.Decimal) decimal.Decimal {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := decimal.NewFromString(v)
	if err != nil || d.IsNegative() {
		return def
	}
	return d
}
