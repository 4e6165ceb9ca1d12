package main

import (
	"context"
	"errors"
	"fmt"
	"vic/internal/cipher"
	"vic/internal/config"
	"vic/internal/record"
	"vic/pkg/domain"
	"vic/pkg/logger"
	"vic/pkg/metrics"
	"vic/pkg/serrors"

	"github.com/prometheus/client_golang/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// app holds what every command needs: the instrumented cipher and the
// metrics plumbing behind it.
type app struct {
	cfg      *config.Config
	cipher   cipher.Cipher
	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider
}

func newApp(cfg *config.Config) (*app, error) {
	reg := prometheus.NewRegistry()
	provider, err := metrics.NewProvider(reg)
	if err != nil {
		return nil, fmt.Errorf("could not create meter provider: %w", err)
	}

	c, err := cipher.NewInstrumented(cipher.New(), provider.Meter("vic"))
	if err != nil {
		return nil, fmt.Errorf("could not instrument cipher: %w", err)
	}

	return &app{
		cfg:      cfg,
		cipher:   c,
		registry: reg,
		provider: provider,
	}, nil
}

// close flushes metrics to the configured file and shuts the provider down.
// The file must be written first: a shut down provider exports nothing.
func (a *app) close(ctx context.Context) {
	if a.cfg.Metrics.File != "" {
		if err := metrics.WriteFile(a.cfg.Metrics.File, a.registry); err != nil {
			logger.Warn(ctx, "could not write metrics", zap.Error(err))
		}
	}
	if err := a.provider.Shutdown(ctx); err != nil {
		logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
	}
}

// readRecord loads the record at path and tags the context logger with it.
func readRecord(ctx context.Context, path string) (context.Context, *domain.Record, error) {
	ctx = logger.WithFields(ctx, zap.String("record", path))

	rec, err := record.Read(path)
	if err != nil {
		return ctx, nil, fmt.Errorf("read record: %w", err)
	}
	logger.Debug(ctx, "record loaded", zap.Int("message_length", len(rec.Message)))

	return ctx, rec, nil
}

// reportFailure logs err with the stage that failed, its error kind and the
// semantic error's own message.
func reportFailure(ctx context.Context, err error) {
	logger.Error(ctx, "cipher run failed", failureFields(err)...)
}

func failureFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}

	var se *cipher.StageError
	if errors.As(err, &se) {
		fields = append(fields, zap.String("stage", se.Stage))
	}

	var ke *serrors.Error
	if errors.As(err, &ke) {
		if k := ke.Kind(); k != nil {
			fields = append(fields, zap.String("kind", k.Error()))
		}
		if msg := ke.Message(); msg != "" {
			fields = append(fields, zap.String("detail", msg))
		}
	}

	return fields
}
