package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Finaxis002/FCOBackend/internal/config"
	"github.com/Finaxis002/FCOBackend/internal/server"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("Case: No .env file found, relying on system env vars")
	}

	cfg := config.Load()

	srv := server.NewServer(cfg)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Case service HTTP server starting on %s", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	// Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Println("Case service shutting down gracefully...")
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Case service shutdown error: %v", err)
		}
	case err := <-errCh:
		log.Fatalf("Case service failed: %v", err)
	}
}
