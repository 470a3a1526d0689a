// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventmanagement/internal/database"
	"eventmanagement/internal/handler"
	"eventmanagement/internal/repository"
	"eventmanagement/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// ── 1. Configuration ─────────────────────────────────────────────────
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment variables")
	}

	// ── 2. Connect to PostgreSQL and apply migrations ────────────────────
	pool, err := database.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()
	log.Println("✓ Connected to PostgreSQL")

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	// ── 3. Wire up layers ────────────────────────────────────────────────
	eventRepo := repository.NewEventRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	regRepo := repository.NewRegistrationRepository(pool)

	eventSvc := service.NewEventService(eventRepo)
	userSvc := service.NewUserService(userRepo)
	regSvc := service.NewRegistrationService(eventRepo, userRepo, regRepo)

	r := handler.NewRouter(
		handler.NewEventHandler(eventSvc),
		handler.NewUserHandler(userSvc),
		handler.NewRegistrationHandler(regSvc),
	)

	// ── 4. Start server with graceful shutdown ────────────────────────────
	port := getEnv("PORT", "8080")
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		log.Printf("✓ Server listening on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	log.Println("server stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
