package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/rajfnu/itt-ai/internal/config"
	"github.com/rajfnu/itt-ai/internal/logging"
	"github.com/rajfnu/itt-ai/internal/server"
)

func main() {
	cfg := config.Load()
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	s := server.NewServer(cfg, logger)
	addr := ":" + cfg.Port
	logger.Info("portal server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, s.Router()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
