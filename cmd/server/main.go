package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"rod-cutting-optimizer/internal/api"
)

func main() {
	addr := flag.String("addr", getEnv("ADDR", ":8080"), "Address to listen on")
	maxLength := flag.Int("max-length", getEnvInt("MAX_LENGTH", api.DefaultMaxLength), "Largest rod length a request may ask for")
	flag.Parse()

	// Initialize database
	dbPath := getEnv("DB_PATH", "./rodcut.db")
	log.Printf("Connecting to database: %s", dbPath)
	db, err := api.InitDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := api.CreateSchema(db); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	server := api.NewServer(db, *maxLength)

	s := &http.Server{
		Addr:              *addr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown failed: %v", err)
		}
	}()

	log.Printf("Starting server on %s (max rod length %d)", *addr, *maxLength)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
	log.Println("Server stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring invalid %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}
