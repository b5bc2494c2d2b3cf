package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values. Every key can come from a
// config.yaml next to the binary (or in ./config) or from the environment;
// environment wins.
type Config struct {
	Host              string        `mapstructure:"APP_HOST"`
	Port              string        `mapstructure:"APP_PORT"`
	HealthEndpoint    string        `mapstructure:"HEALTH_ENDPOINT"`
	ReadHeaderTimeout time.Duration `mapstructure:"READ_HEADER_TIMEOUT"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	HotelDataPath    string `mapstructure:"HOTEL_DATA_PATH"`
	IndexStoragePath string `mapstructure:"INDEX_STORAGE_PATH"`

	// Retrieval configuration.
	GeminiAPIKey        string  `mapstructure:"GEMINI_API_KEY"`
	EmbeddingModel      string  `mapstructure:"EMBEDDING_MODEL"`
	TopKResults         int     `mapstructure:"TOP_K_RESULTS"`
	SimilarityThreshold float64 `mapstructure:"SIMILARITY_THRESHOLD"`

	// Redis answer cache; disabled when REDIS_ADDR is empty.
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	QueryCacheTTL time.Duration `mapstructure:"QUERY_CACHE_TTL"`

	// Conversational platform API; endpoints answer 503 when the key is empty.
	ElevenLabsAPIKey  string `mapstructure:"ELEVENLABS_API_KEY"`
	ElevenLabsBaseURL string `mapstructure:"ELEVENLABS_BASE_URL"`

	RateLimitPerMin int `mapstructure:"RATE_LIMIT_PER_MIN"`
	RateLimitBurst  int `mapstructure:"RATE_LIMIT_BURST"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_HOST", "0.0.0.0")
	viper.SetDefault("APP_PORT", "8000")
	viper.SetDefault("HEALTH_ENDPOINT", "/health")
	viper.SetDefault("READ_HEADER_TIMEOUT", "20s")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("HOTEL_DATA_PATH", "hotel_data.json")
	viper.SetDefault("INDEX_STORAGE_PATH", "storage")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("EMBEDDING_MODEL", "text-embedding-004")
	viper.SetDefault("TOP_K_RESULTS", 3)
	viper.SetDefault("SIMILARITY_THRESHOLD", 0.3)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("QUERY_CACHE_TTL", "10m")
	viper.SetDefault("ELEVENLABS_API_KEY", "")
	viper.SetDefault("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io/v1/convai")
	viper.SetDefault("RATE_LIMIT_PER_MIN", 60)
	viper.SetDefault("RATE_LIMIT_BURST", 10)

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, the environment takes over.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var conf Config

	if err := viper.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &conf, nil
}
