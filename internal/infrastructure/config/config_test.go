package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Mongo.Database != "blog" {
		t.Fatalf("expected default database blog, got %q", cfg.Mongo.Database)
	}
	if cfg.Mongo.Timeout != 10*time.Second {
		t.Fatalf("expected default mongo timeout 10s, got %v", cfg.Mongo.Timeout)
	}
	if cfg.Redis.Timeout != 5*time.Second {
		t.Fatalf("expected default redis timeout 5s, got %v", cfg.Redis.Timeout)
	}
	if cfg.IsProduction() {
		t.Fatalf("default env must not be production")
	}
}

func TestLoad_MissingSecretFails(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	// t.Setenv registers the restore; unset so the required check fires.
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error when JWT_SECRET is absent")
	}
}

func TestLoad_MissingStoreURIFails(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("MONGO_URI", "")
	os.Unsetenv("MONGO_URI")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error when MONGO_URI is absent")
	}
}
