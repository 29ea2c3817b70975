package main

import (
	"log"

	"todoapp/internal/config"
	"todoapp/internal/logger"
	"todoapp/internal/server"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.LogDevelopment); err != nil {
		log.Fatalf("failed to initialize logger: %s", err)
	}
	defer logger.Sync()

	srv, err := server.Init(cfg)
	if err != nil {
		logger.Error("failed to initialize server", err)
		logger.Sync()
		log.Fatal(err)
	}

	srv.Run()
}
