package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github-streak-viewer/internal/api"
	"github-streak-viewer/internal/config"
	"github-streak-viewer/internal/scheduler"
	"github-streak-viewer/internal/snapshot"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	log.Println("config loaded")

	store := snapshot.NewStore()

	router := gin.Default()
	handler := api.NewHandler(cfg, store)

	v1 := router.Group("/api/v1")
	{
		// Health check - no auth
		v1.GET("/health", handler.Health)

		// Refresh authenticates with the GitHub token in the request body
		v1.POST("/stats", handler.Refresh)

		// Read endpoints - guarded by the service token when configured
		v1.GET("/stats/:login", handler.AuthMiddleware(), handler.Stats)
		v1.GET("/stats/:login/export", handler.AuthMiddleware(), handler.Export)
	}

	sched, err := scheduler.NewScheduler(cfg, store)
	if err != nil {
		log.Fatalf("failed to create scheduler: %v", err)
	}
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("starting HTTP server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server forced to shut down: %v", err)
	}

	log.Println("server exited")
}
