// Package main provides the CLI entrypoint for the VIC cipher tool.
// It loads configuration, initializes logging and metrics, and wires the
// decrypt (root), encrypt and board commands.
package main

import (
	"context"
	"log"
	"os"
	"vic/internal/config"
	"vic/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// configEnv names the environment variable holding an optional config file
// path. The CLI takes no flags, so this is the only way to point at a file.
const configEnv = "VIC_CONFIG"

// main loads configuration and logging, runs the command line and exits
// non-zero when the run failed.
func main() {
	cfg, err := config.Load(os.Getenv(configEnv))
	if err != nil {
		log.Fatal("could not load config: ", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.Log.Level); err != nil {
		log.Fatal("could not set up logger: ", err)
	}

	ctx := logger.WithFields(context.Background(), zap.String("run_id", uuid.NewString()))

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	a, err := newApp(cfg)
	if err != nil {
		logger.Fatal(ctx, "could not set up cipher", zap.Error(err))
	}

	err = newRootCommand(a).ExecuteContext(ctx)
	if err != nil {
		reportFailure(ctx, err)
	} else {
		logger.Info(ctx, "cipher run finished")
	}
	a.close(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
