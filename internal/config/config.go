package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
	Curation CurationConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ListingCacheTTL time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
}

// CurationConfig carries the content-layer settings: the main curator
// account whose places are visible to every viewer, and listing limits.
type CurationConfig struct {
	MainCuratorID string
	DefaultLimit  int
	MaxLimit      int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ListingCacheTTL: time.Duration(viper.GetInt("LISTING_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
		},
		Curation: CurationConfig{
			MainCuratorID: viper.GetString("MAIN_CURATOR_ID"),
			DefaultLimit:  viper.GetInt("LISTING_DEFAULT_LIMIT"),
			MaxLimit:      viper.GetInt("LISTING_MAX_LIMIT"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.ListingCacheTTL == 0 {
		cfg.Cache.ListingCacheTTL = 60 * time.Second
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
		if cfg.Server.Env == "development" {
			cfg.Log.Format = "console"
		}
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "like-event-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if cfg.Curation.DefaultLimit == 0 {
		cfg.Curation.DefaultLimit = 20
	}
	if cfg.Curation.MaxLimit == 0 {
		cfg.Curation.MaxLimit = 100
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
