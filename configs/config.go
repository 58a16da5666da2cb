package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Placeholder values shipped in .env.example. Leaving them in place means
// "not configured", which is a valid state (the menu runs on the baseline).
const (
	PlaceholderDBURL = "your_database_url_here"
	PlaceholderDBKey = "your_service_key_here"
)

type Config struct {
	CatalogDBDriver string // "postgres" (remote) or "sqlite" (dev)
	CatalogDBURL    string
	CatalogDBKey    string // DSN password, kept out of CATALOG_DB_URL

	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	AdminEmail    string
	AdminPassword string

	CafeName       string
	WhatsAppNumber string

	SeedBaseline bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading environment directly")
	}

	return &Config{
		CatalogDBDriver: getEnv("CATALOG_DB_DRIVER", "postgres"),
		CatalogDBURL:    getEnv("CATALOG_DB_URL", ""),
		CatalogDBKey:    getEnv("CATALOG_DB_KEY", ""),
		Port:            getEnv("PORT", "8000"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          time.Duration(24) * time.Hour,
		AdminEmail:      getEnv("ADMIN_EMAIL", ""),
		AdminPassword:   getEnv("ADMIN_PASSWORD", ""),
		CafeName:        getEnv("CAFE_NAME", "مقهى موال مراكش"),
		WhatsAppNumber:  getEnv("WHATSAPP_NUMBER", "966567833138"),
		SeedBaseline:    getEnvBool("SEED_BASELINE", false),
	}
}

// IsCatalogConfigured reports whether the remote catalog DB is worth probing.
// Missing values and the .env.example placeholders both mean "not configured".
func (c *Config) IsCatalogConfigured() bool {
	if c.CatalogDBURL == "" || c.CatalogDBKey == "" {
		return false
	}
	if c.CatalogDBURL == PlaceholderDBURL || c.CatalogDBKey == PlaceholderDBKey {
		return false
	}
	return true
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
