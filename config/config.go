package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// Production deployment of the RKCP scoring API.
	defaultAPIBaseURL = "https://rkcp-score.vercel.app"
	// Local backend used during development.
	devAPIBaseURL = "http://localhost:3000"
)

type Config struct {
	Log       Logger    `mapstructure:"logger"`
	API       API       `mapstructure:"api"`
	RKCP      RKCPAPI   `mapstructure:"rkcp"`
	Cache     Cache     `mapstructure:"cache"`
	Suggest   Suggest   `mapstructure:"suggest"`
	List      List      `mapstructure:"list"`
	Scheduler Scheduler `mapstructure:"scheduler"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type API struct {
	Port                 int           `mapstructure:"port"`
	RateLimitPerSecond   int           `mapstructure:"rate_limit_per_second"`
	RateLimitBurst       int           `mapstructure:"rate_limit_burst"`
	RateLimitExpireAfter time.Duration `mapstructure:"rate_limit_expire_after"`
}

type RKCPAPI struct {
	BaseURL             string        `mapstructure:"base_url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

type Suggest struct {
	Debounce     time.Duration `mapstructure:"debounce"`
	MinQueryLen  int           `mapstructure:"min_query_len"`
	PoolSize     int           `mapstructure:"pool_size"`
	DefaultLimit int           `mapstructure:"default_limit"`
	PoolTTL      time.Duration `mapstructure:"pool_ttl"`
}

type List struct {
	PageSize int `mapstructure:"page_size"`
}

type Scheduler struct {
	PoolPrewarmSpec string `mapstructure:"pool_prewarm_spec"`
}

func Load() (*Config, error) {
	// Best effort, a missing .env is fine.
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.RKCP.BaseURL = resolveBaseURL()

	return &cfg, nil
}

// resolveBaseURL picks the upstream API endpoint once at startup.
// Precedence: RKCP_API_BASE_URL override > APP_ENV profile > compiled default.
func resolveBaseURL() string {
	if override := viper.GetString("RKCP_API_BASE_URL"); override != "" {
		return override
	}
	if viper.GetString("APP_ENV") == "development" {
		return devAPIBaseURL
	}
	return defaultAPIBaseURL
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")

	viper.SetDefault("api.port", 8080)
	viper.SetDefault("api.rate_limit_per_second", 10)
	viper.SetDefault("api.rate_limit_burst", 30)
	viper.SetDefault("api.rate_limit_expire_after", 3*time.Minute)

	viper.SetDefault("rkcp.timeout", 15*time.Second)
	viper.SetDefault("rkcp.max_request_per_minute", 60)

	viper.SetDefault("cache.default_expiration", 5*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 10*time.Minute)

	viper.SetDefault("suggest.debounce", 300*time.Millisecond)
	viper.SetDefault("suggest.min_query_len", 2)
	viper.SetDefault("suggest.pool_size", 500)
	viper.SetDefault("suggest.default_limit", 10)
	viper.SetDefault("suggest.pool_ttl", 5*time.Minute)

	viper.SetDefault("list.page_size", 50)

	viper.SetDefault("scheduler.pool_prewarm_spec", "@every 5m")
}
