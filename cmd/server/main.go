// cmd/server/main.go
package main

import (
	"log"

	"github.com/sozercan/sentiment-analyzer/internal/analyzer"
	"github.com/sozercan/sentiment-analyzer/internal/config"
	"github.com/sozercan/sentiment-analyzer/internal/logging"
	"github.com/sozercan/sentiment-analyzer/internal/sentiment"
	"github.com/sozercan/sentiment-analyzer/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logging.InitLogger(cfg.Log.Level)

	backend, err := sentiment.New(cfg)
	if err != nil {
		log.Fatalf("failed to create sentiment backend: %v", err)
	}

	srv := server.New(*cfg, analyzer.New(backend))
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
