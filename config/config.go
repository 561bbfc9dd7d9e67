package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                 string
	Port                string
	RedisURL            string // empty means in-memory session store
	KafkaBrokers        []string
	KafkaTopic          string
	JWTSecret           string
	SessionTTL          time.Duration
	BookingConfirmDelay time.Duration
	CelebrationTTL      time.Duration
	RequestTimeout      time.Duration
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return Config{
		Env:                 getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "8089"),
		RedisURL:            getEnv("REDIS_URL", ""),
		KafkaBrokers:        splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:          getEnv("KAFKA_TOPIC", "booking.confirmed"),
		JWTSecret:           getEnv("JWT_SECRET", "dev-secret"),
		SessionTTL:          getDuration("SESSION_TTL", 30*time.Minute),
		BookingConfirmDelay: getDuration("BOOKING_CONFIRM_DELAY", 3*time.Second),
		CelebrationTTL:      getDuration("CELEBRATION_TTL", 5*time.Second),
		RequestTimeout:      getDuration("REQUEST_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using default %s", key, defaultVal)
	}
	return defaultVal
}

func splitList(val string) []string {
	if val == "" {
		return nil
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
