package main

import (
	"context"
	"fmt"
	"os"

	"github.com/natserract/advocacy/pkg/advocacy"
	"github.com/natserract/advocacy/pkg/config"
	"github.com/natserract/advocacy/pkg/debugstore/postgres"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := advocacy.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	settings, err := config.Load()
	if err != nil {
		logger.Error("Failed to load settings", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Debug records go to postgres when enabled; debug capture is switched
	// on with it.
	var opts []advocacy.Option
	var store *postgres.DB
	if settings.DebugDatabase {
		store, err = postgres.New(postgres.NewConfig(), logger)
		if err != nil {
			logger.Error("Failed to connect to debug database", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Failed to connect to debug database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		if err := store.Migrate(ctx); err != nil {
			logger.Error("Failed to migrate debug database", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Failed to migrate debug database: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, advocacy.WithDebugSink(store))
		cfg.Debug = true
	}

	client, err := advocacy.NewWithLogger(cfg, logger, opts...)
	if err != nil {
		logger.Error("Failed to create client", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
		os.Exit(1)
	}

	a := newApp(client, settings, logger, os.Stdout)
	a.store = store

	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		// os.Exit skips deferred calls
		if store != nil {
			store.Close()
		}
		_ = logger.Sync()
		os.Exit(1)
	}
}
