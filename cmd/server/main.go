package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ybordev/site-content/pkg/sitecontent/api"
	"github.com/ybordev/site-content/pkg/sitecontent/config"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	serverConfig, err := config.Load(config.WithEnv())
	if err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}

	setupLogger(serverConfig)

	svc, err := serverConfig.BuildService()
	if err != nil {
		log.Fatalf("Failed to build content service: %v", err)
	}

	sender, err := serverConfig.BuildSender()
	if err != nil {
		log.Fatalf("Failed to build mail sender: %v", err)
	}
	if sender == nil {
		slog.Warn("No mail endpoint configured, form submission disabled")
	}

	routerConfig := api.RouterConfig{
		Service:        svc,
		Sender:         sender,
		MailFrom:       serverConfig.MailFrom,
		MailTo:         serverConfig.MailTo,
		RequestTimeout: serverConfig.RequestTimeout,
	}
	if !serverConfig.IsProduction() {
		routerConfig.AllowedOrigins = []string{"*"}
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", serverConfig.Port),
		Handler: api.NewRouter(routerConfig),
	}

	go func() {
		slog.Info("Site content server starting",
			"port", serverConfig.Port,
			"environment", serverConfig.Environment)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	slog.Info("Server exiting")
}

// setupLogger installs the process-wide logger: JSON in production, text
// elsewhere.
func setupLogger(cfg *config.ServerConfig) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}
