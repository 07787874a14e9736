// Command secretfriend serves the secret-friend draw page.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/secretfriend/pkg/config"
	"github.com/dmitrymomot/secretfriend/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg)
	if err := run(ctx, cfg, log); err != nil {
		log.Error("secretfriend stopped", logger.Error(err))
		os.Exit(1)
	}
}
