package config

import (
	"crypto/rand"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the process-wide settings. It is loaded once at startup and
// passed by value to whatever needs it.
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	DBDriver       string
	DatabaseURL    string
	AdminSecretKey string
	SessionSecret  []byte
	RateLimitRPS   float64
	RateLimitBurst int
	CORSOrigins    []string
	TrustedProxies []string
}

// Load reads .env (if present) and the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	cfg := Config{
		Port:           getenv("PORT", "8080"),
		GinMode:        os.Getenv("GIN_MODE"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		DBDriver:       strings.ToLower(getenv("DB_DRIVER", DriverSQLite)),
		DatabaseURL:    getenv("DATABASE_URL", "cafes.db"),
		AdminSecretKey: os.Getenv("ADMIN_SECRET_KEY"),
		RateLimitRPS:   parseFloat(getenv("RATE_LIMIT_RPS", "20")),
		RateLimitBurst: atoi(getenv("RATE_LIMIT_BURST", "40")),
		CORSOrigins:    splitList(os.Getenv("CORS_ORIGINS")),
		TrustedProxies: splitList(getenv("TRUSTED_PROXIES", "127.0.0.1")),
	}

	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.SessionSecret = []byte(secret)
	} else {
		log.Printf("Warning: SESSION_SECRET not set, flash cookies will not survive a restart")
		cfg.SessionSecret = randomSecret()
	}

	if cfg.AdminSecretKey == "" {
		log.Printf("Warning: ADMIN_SECRET_KEY not set, the edit pages are disabled")
	}

	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func randomSecret() []byte {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("Failed to generate session secret: %v", err)
	}
	return b
}
