package main

import (
	"context"
	"os"
	"os/signal"

	"checkout/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := cmd.NewLogger(os.Stderr, config.LogFormat, config.LogLevel)
	app := cmd.NewCompositionRoot(config, os.Stdout, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = cmd.Run(ctx, app, os.Stdout); err != nil {
		stop()
		log.Fatalf("Error printing invoice: %v", err)
	}
}
