package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Checkout  CheckoutConfig
	Printer   PrinterConfig
	Cache     CacheConfig
	Broker    BrokerConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// CheckoutConfig carries the pricing knobs for order creation.
// POSCharge is the flat surcharge, in minor units, applied once per
// order paid through the POS terminal.
type CheckoutConfig struct {
	POSCharge           int64
	ReconcileInterval   time.Duration
	ReconcileStaleAfter time.Duration
}

type PrinterConfig struct {
	Type    string // "usb", "network", or "none"
	USBPath string
	Address string
	Width   int
}

// CacheConfig configures the optional Redis product cache. The cache is
// disabled when Host is empty.
type CacheConfig struct {
	Host string
	Port int
	TTL  time.Duration
}

// BrokerConfig configures the optional order event publisher. Publishing
// is disabled when URL is empty.
type BrokerConfig struct {
	URL   string
	Queue string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	// Set defaults
	viper.SetDefault("APP_NAME", "wumikay-ventures")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "wumikay")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Africa/Lagos")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("POS_CHARGE", 150.0)
	viper.SetDefault("RECONCILE_INTERVAL_MINUTES", 15)
	viper.SetDefault("RECONCILE_STALE_AFTER_MINUTES", 30)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_WIDTH", 32)
	viper.SetDefault("CACHE_HOST", "")
	viper.SetDefault("CACHE_PORT", 6379)
	viper.SetDefault("CACHE_TTL_SECONDS", 300)
	viper.SetDefault("BROKER_URL", "")
	viper.SetDefault("BROKER_QUEUE", "order_events")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Checkout: CheckoutConfig{
			POSCharge:           int64(viper.GetFloat64("POS_CHARGE") * 100),
			ReconcileInterval:   time.Duration(viper.GetInt("RECONCILE_INTERVAL_MINUTES")) * time.Minute,
			ReconcileStaleAfter: time.Duration(viper.GetInt("RECONCILE_STALE_AFTER_MINUTES")) * time.Minute,
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
			Width:   viper.GetInt("PRINTER_WIDTH"),
		},
		Cache: CacheConfig{
			Host: viper.GetString("CACHE_HOST"),
			Port: viper.GetInt("CACHE_PORT"),
			TTL:  time.Duration(viper.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		},
		Broker: BrokerConfig{
			URL:   viper.GetString("BROKER_URL"),
			Queue: viper.GetString("BROKER_QUEUE"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
