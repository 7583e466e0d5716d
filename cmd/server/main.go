package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/coversync/coversync/internal/api"
	"github.com/coversync/coversync/internal/auth"
	"github.com/coversync/coversync/internal/metrics"
	"github.com/coversync/coversync/internal/middleware"
	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage"
	"github.com/coversync/coversync/internal/storage/localstore"
	"github.com/coversync/coversync/internal/storage/slot"
	"github.com/coversync/coversync/pkg/logging"
)

const defaultTokenTTL = 24 * time.Hour

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// openBackend selects the slot medium from STORE_BACKEND:
// sqlite (default), file, or memory.
func openBackend() (slot.Backend, error) {
	switch backend := getEnv("STORE_BACKEND", "sqlite"); backend {
	case "sqlite":
		return slot.NewSQLite(getEnv("DATA_PATH", "./data/coversync.db"))
	case "file":
		return slot.NewFile(getEnv("DATA_PATH", "./data"))
	case "memory":
		return slot.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}
}

// bootstrapAdmin creates the initial admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD when the user collection is empty, so a fresh install has
// a way to log in.
func bootstrapAdmin(ctx context.Context, store storage.Store) error {
	users, err := store.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	email := getEnv("ADMIN_EMAIL", "admin@coversync.local")
	password := getEnv("ADMIN_PASSWORD", "")
	if password == "" {
		slog.Warn("No users exist and ADMIN_PASSWORD is unset; skipping admin bootstrap")
		return nil
	}

	authenticator := auth.NewPasswordAuthenticator(store)
	admin, err := authenticator.Register(ctx, email, "Administrator", models.RoleAdmin, password)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	slog.Info("Bootstrap admin created", "email", admin.Email)
	return nil
}

func main() {
	logging.Setup()

	backend, err := openBackend()
	if err != nil {
		slog.Error("Failed to open storage backend", "error", err)
		os.Exit(1)
	}

	store := localstore.New(backend)
	defer store.Close()
	slog.Info("Storage initialized", "backend", getEnv("STORE_BACKEND", "sqlite"))

	if err := bootstrapAdmin(context.Background(), store); err != nil {
		slog.Error("Admin bootstrap failed", "error", err)
		os.Exit(1)
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}
	tokenTTL := defaultTokenTTL
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			slog.Error("Invalid TOKEN_TTL", "value", ttl, "error", err)
			os.Exit(1)
		}
		tokenTTL = parsed
	}
	jwtManager := auth.NewJWTManager(jwtSecret, tokenTTL)

	handler := api.New(store, jwtManager)

	mux := http.NewServeMux()
	mux.Handle("/", handler.Routes())
	mux.Handle("GET /metrics", metrics.Handler())

	chained := middleware.Logging(middleware.CORS(metrics.Instrument(mux)))

	// Wrap with h2c so clients can speak HTTP/2 without TLS behind the
	// ingress.
	h2cHandler := h2c.NewHandler(chained, &http2.Server{})

	addr := ":" + getEnv("PORT", "8080")
	slog.Info("CoverSync server starting", "address", addr)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
