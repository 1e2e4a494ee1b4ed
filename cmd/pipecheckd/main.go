package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pipecheck/pipecheck/pkg/config"
	"github.com/pipecheck/pipecheck/pkg/env"
	"github.com/pipecheck/pipecheck/pkg/logging"
	"github.com/pipecheck/pipecheck/pkg/version"
	"github.com/pipecheck/pipecheck/server"
)

var (
	configPath = flag.String("config", "", "Path to an optional YAML configuration file")
	listenAddr = flag.String("listen", "", "Listen address, overrides config and environment")
	debug      = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	// A .env in the working directory feeds the PIPECHECK_* overrides.
	if err := env.LoadFromDir("."); err != nil {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}
	if *debug {
		cfg.LogLevel = "debug"
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	log.Info("pipecheckd starting", "version", version.String(), "addr", cfg.ListenAddr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, log)
	if err := srv.Start(ctx); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("pipecheckd stopped")
}
