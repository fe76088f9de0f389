package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// ProviderConfig holds the endpoint and credentials of one rate provider.
type ProviderConfig struct {
	BaseURL string
	APIKey  string
}

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string
	JWTIssuer     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	ParamCacheTTL time.Duration

	RateLimit          string // ulule limiter format, e.g. "100-M"
	CORSAllowedOrigins []string

	KafkaBrokers    []string
	KafkaOrderTopic string

	// Rate providers
	RateProviderTimeout time.Duration
	CurrencyLayer       ProviderConfig
	ExchangeRateAPI     ProviderConfig
	ExRates             ProviderConfig

	// Fallbacks used when the param store has no value.
	DefaultRateAPI            string
	DefaultTransactionCostPct decimal.Decimal
	DefaultTaxPct             decimal.Decimal
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_ISSUER", "remittance-backoffice")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("PARAM_CACHE_TTL", "30s")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_ORDER_TOPIC", "orders.priced")
	v.SetDefault("RATE_PROVIDER_TIMEOUT", "0s")
	v.SetDefault("CURRENCYLAYER_BASE_URL", "https://api.currencylayer.com")
	v.SetDefault("CURRENCYLAYER_API_KEY", "")
	v.SetDefault("EXCHANGERATE_API_BASE_URL", "https://v6.exchangerate-api.com/v6")
	v.SetDefault("EXCHANGERATE_API_KEY", "")
	v.SetDefault("EXRATES_BASE_URL", "")
	v.SetDefault("EXRATES_API_KEY", "")
	v.SetDefault("DEFAULT_RATE_API", "currencylayer")
	v.SetDefault("DEFAULT_TRANSACTION_COST_PCT", "0")
	v.SetDefault("DEFAULT_TAX_PCT", "0")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		RedisDB:         v.GetInt("REDIS_DB"),
		RateLimit:       v.GetString("RATE_LIMIT"),
		KafkaOrderTopic: v.GetString("KAFKA_ORDER_TOPIC"),
		CurrencyLayer: ProviderConfig{
			BaseURL: v.GetString("CURRENCYLAYER_BASE_URL"),
			APIKey:  v.GetString("CURRENCYLAYER_API_KEY"),
		},
		ExchangeRateAPI: ProviderConfig{
			BaseURL: v.GetString("EXCHANGERATE_API_BASE_URL"),
			APIKey:  v.GetString("EXCHANGERATE_API_KEY"),
		},
		ExRates: ProviderConfig{
			BaseURL: v.GetString("EXRATES_BASE_URL"),
			APIKey:  v.GetString("EXRATES_API_KEY"),
		},
		DefaultRateAPI: v.GetString("DEFAULT_RATE_API"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.ParamCacheTTL = durationOrDefault(v, "PARAM_CACHE_TTL", 30*time.Second)
	cfg.RateProviderTimeout = durationOrDefault(v, "RATE_PROVIDER_TIMEOUT", 0)
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.KafkaBrokers = splitList(v.GetString("KAFKA_BROKERS"))
	cfg.DefaultTransactionCostPct = decimalOrZero(v, "DEFAULT_TRANSACTION_COST_PCT")
	cfg.DefaultTaxPct = decimalOrZero(v, "DEFAULT_TAX_PCT")

	return cfg
}

func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func decimalOrZero(v *viper.Viper, key string) decimal.Decimal {
	raw := v.GetString(key)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to 0.\n", key, raw)
		}
		return decimal.Zero
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
