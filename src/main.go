package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"video-fetch-be/src/application"
	"video-fetch-be/src/application/config"
	"video-fetch-be/src/lib/env"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.Environment)

	app := application.NewApp(cfg)
	app.Start()

	waitForSignal()

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	app.Stop(ctx)
}

func setupLogging(environment env.Environment) {
	if environment.IsDevelopment() {
		log.SetHandler(text.New(os.Stderr))
		log.SetLevel(log.DebugLevel)
		return
	}

	log.SetHandler(json.New(os.Stdout))
	log.SetLevel(log.InfoLevel)
}

func waitForSignal() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals
}
