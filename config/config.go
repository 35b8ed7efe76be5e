package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB configuration (confirmed booking records).
	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Conversation session expiry, in minutes.
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`

	// Cached LLM completion expiry, in minutes.
	CompletionCacheTTLMinutes int `mapstructure:"COMPLETION_CACHE_TTL_MINUTES"`

	// Gemini configuration.
	GeminiAPIKey     string `mapstructure:"GEMINI_API_KEY"`
	GeminiChatModel  string `mapstructure:"GEMINI_CHAT_MODEL"`
	GeminiEmbedModel string `mapstructure:"GEMINI_EMBED_MODEL"`

	// Qdrant configuration.
	QdrantHost       string `mapstructure:"QDRANT_HOST"`
	QdrantPort       int    `mapstructure:"QDRANT_PORT"`
	QdrantCollection string `mapstructure:"QDRANT_COLLECTION"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "concierge")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("COMPLETION_CACHE_TTL_MINUTES", 60)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_CHAT_MODEL", "models/gemini-1.5-flash")
	viper.SetDefault("GEMINI_EMBED_MODEL", "models/text-embedding-004")
	viper.SetDefault("QDRANT_HOST", "localhost")
	viper.SetDefault("QDRANT_PORT", 6334)
	viper.SetDefault("QDRANT_COLLECTION", "documents")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
