package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"filedepot/config"
	"filedepot/database"
	"filedepot/handlers"
	"filedepot/services"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	var archive *services.ArchiveService
	storageCfg := config.LoadStorageConfig()
	if storageCfg.IsS3Enabled() {
		archive, err = services.NewArchiveService(storageCfg)
		if err != nil {
			log.Fatal("Failed to initialize S3 archive: ", err)
		}
		log.Printf("S3 archive enabled, bucket: %s", storageCfg.S3Bucket)
	}

	router := handlers.NewRouter(cfg, db, archive)

	server := &http.Server{
		Addr:    "0.0.0.0:" + cfg.ServerPort,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := database.Close(db); err != nil {
		log.Printf("Database close: %v", err)
	}
}
