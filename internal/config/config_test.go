package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "MONGODB_URI", "MONGODB_DATABASE", "JWT_SECRET", "EXPIRES_IN", "ALLOWED_ORIGIN"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Addr != ":5000" {
		t.Errorf("unexpected default addr %q", cfg.Addr)
	}
	if cfg.MongoDatabase != "health-supply-chain" {
		t.Errorf("unexpected default database %q", cfg.MongoDatabase)
	}
	if cfg.TokenLifetime != 72*time.Hour {
		t.Errorf("unexpected default token lifetime %v", cfg.TokenLifetime)
	}
	if cfg.AllowedOrigin == "" {
		t.Error("allowed origin default missing")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("MONGODB_DATABASE", "supplies-test")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("EXPIRES_IN", "30m")
	t.Setenv("ALLOWED_ORIGIN", "http://localhost:3000")

	cfg := Load()
	if cfg.Addr != ":9090" {
		t.Errorf("unexpected addr %q", cfg.Addr)
	}
	if cfg.MongoURI != "mongodb://db:27017" {
		t.Errorf("unexpected mongo uri %q", cfg.MongoURI)
	}
	if cfg.MongoDatabase != "supplies-test" {
		t.Errorf("unexpected database %q", cfg.MongoDatabase)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Errorf("unexpected secret %q", cfg.JWTSecret)
	}
	if cfg.TokenLifetime != 30*time.Minute {
		t.Errorf("unexpected token lifetime %v", cfg.TokenLifetime)
	}
	if cfg.AllowedOrigin != "http://localhost:3000" {
		t.Errorf("unexpected origin %q", cfg.AllowedOrigin)
	}
}

func TestLoad_InvalidLifetimeFallsBack(t *testing.T) {
	t.Setenv("EXPIRES_IN", "three days")

	if got := Load().TokenLifetime; got != 72*time.Hour {
		t.Errorf("expected fallback lifetime, got %v", got)
	}
}
