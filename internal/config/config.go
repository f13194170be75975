package config

import (
	"os"
	"time"
)

const defaultTokenLifetime = 72 * time.Hour

type Config struct {
	Addr          string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	TokenLifetime time.Duration
	AllowedOrigin string
}

func Load() Config {
	return Config{
		Addr:          ":" + getenv("PORT", "5000"),
		MongoURI:      getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getenv("MONGODB_DATABASE", "health-supply-chain"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenLifetime: tokenLifetime(),
		AllowedOrigin: getenv("ALLOWED_ORIGIN", "https://smart-health-supply-chain-client.vercel.app"),
	}
}

func tokenLifetime() time.Duration {
	v := os.Getenv("EXPIRES_IN")
	if v == "" {
		return defaultTokenLifetime
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultTokenLifetime
	}
	return d
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
