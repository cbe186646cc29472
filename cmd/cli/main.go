package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/softwareslayer/internal/buildinfo"
	"github.com/dmitrijs2005/softwareslayer/internal/client/cli"
	"github.com/dmitrijs2005/softwareslayer/internal/client/config"
	"github.com/dmitrijs2005/softwareslayer/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			logger.Error(ctx, "client stopped", "error", err)
		}
	case <-ctx.Done():
		// the REPL may be blocked reading stdin
		app.Close()
	}
}
