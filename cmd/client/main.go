package main

import (
	"context"
	"log"
	"os"

	"github.com/jobboardhq/backoffice/internal/client/cli"
	"github.com/jobboardhq/backoffice/internal/client/config"
	"github.com/jobboardhq/backoffice/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)
}
