package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Session store backends
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
	SessionStoreSQLite = "sqlite"
)

type Config struct {
	Port        string
	Environment string
	// Remote inventory API
	APIBaseURL        string
	APITimeoutSeconds int // 0 disables the client-side timeout
	// Inventory view
	ExpiringSoonDays int
	// Session persistence
	SessionStore string
	SessionTTL   int // seconds
	SQLitePath   string
	// Redis Configuration (SESSION_STORE=redis)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	// Kafka Configuration (change notifications - optional)
	UseKafka        bool
	KafkaBrokers    []string
	KafkaTopicItems string
	KafkaClientID   string
	KafkaAcks       string
	KafkaRetries    int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Parse Kafka brokers (comma-separated)
	kafkaBrokersStr := getEnv("KAFKA_BROKERS", "localhost:9093")
	kafkaBrokers := strings.Split(kafkaBrokersStr, ",")
	for i, broker := range kafkaBrokers {
		kafkaBrokers[i] = strings.TrimSpace(broker)
	}

	return &Config{
		Port:              getEnv("PORT", "8082"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		APIBaseURL:        strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:3001"), "/"),
		APITimeoutSeconds: getEnvAsInt("API_TIMEOUT_SECONDS", 0),
		ExpiringSoonDays:  getEnvAsInt("EXPIRING_SOON_DAYS", 30),
		SessionStore:      strings.ToLower(getEnv("SESSION_STORE", SessionStoreMemory)),
		SessionTTL:        getEnvAsInt("SESSION_TTL", 7*24*3600),
		SQLitePath:        getEnv("SQLITE_PATH", "./session.db"),
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getEnv("REDIS_PORT", "6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		UseKafka:          getEnvAsBool("USE_KAFKA", false),
		KafkaBrokers:      kafkaBrokers,
		KafkaTopicItems:   getEnv("KAFKA_TOPIC_ITEMS", "inventory.items"),
		KafkaClientID:     getEnv("KAFKA_CLIENT_ID", "inventory-manager"),
		KafkaAcks:         getEnv("KAFKA_ACKS", "all"),
		KafkaRetries:      getEnvAsInt("KAFKA_RETRIES", 3),
	}
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.ToLower(value) == "true" || value == "1"
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return result
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
