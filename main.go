package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ridemate/internal/bootstrap"
	"ridemate/internal/shared/config"
	"ridemate/internal/shared/logger"
)

func main() {
	cfg := config.Load()
	log := logger.NewLogger("ridemate")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	go func() { <-quit; cancel() }()

	bootstrap.Run(ctx, cfg, log)
}
