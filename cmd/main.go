package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	redisclient "sentrybot/clients/redis"
	"sentrybot/config"
	"sentrybot/db"
	"sentrybot/handlers"
	"sentrybot/services/guilds"
	"sentrybot/services/pendingcomponents"
	"sentrybot/usecases/interactions"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize database connection
	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// Initialize the key-value store for pending component state
	kvStore, err := redisclient.NewRedisKeyValueStore(cfg.RedisURL)
	if err != nil {
		return err
	}
	defer kvStore.Close()

	if err := kvStore.Ping(context.Background()); err != nil {
		return err
	}

	// Initialize repositories and services
	guildsRepo := db.NewPostgresGuildsRepository(dbConn, cfg.DatabaseSchema)
	guildsService := guilds.NewGuildsService(guildsRepo)
	pendingComponentsService := pendingcomponents.NewPendingComponentsService(kvStore)

	interactionsUseCase := interactions.NewInteractionsUseCase(guildsService)

	discordHandler, err := handlers.NewDiscordEventsHandler(
		cfg.DiscordConfig.BotToken,
		interactionsUseCase,
		pendingComponentsService,
	)
	if err != nil {
		return err
	}

	if err := discordHandler.StartBot(); err != nil {
		return err
	}
	defer discordHandler.StopBot()

	// Create the HTTP router for operational endpoints
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Printf("❌ Failed to write health check response: %v", err)
		}
	}).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	// Channel to listen for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
