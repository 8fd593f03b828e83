package main

import (
	"context"
	app "ctchen222/tictactoe-console/internal/app"
	"ctchen222/tictactoe-console/internal/config"
	"ctchen222/tictactoe-console/internal/logger"
	"ctchen222/tictactoe-console/internal/telemetry"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
)

var (
	configFlag = flag.String("config", "", "path to a YAML config file (optional)")
	sizeFlag   = flag.Int("size", 0, "board size from 3 to 6 (default: random, favouring 3)")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *sizeFlag != 0 {
		conf.BoardSize = *sizeFlag
	}

	// Initialize telemetry
	shutdown, err := telemetry.Init(ctx, conf.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "tictactoe: error shutting down telemetry: %v\n", err)
		}
	}()

	log := logger.Init(os.Stderr, logger.ParseLevel(conf.LogLevel))

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	if _, err := app.RunApp(ctx, log, conf, os.Stdin, os.Stdout, rng); err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}
	return nil
}
