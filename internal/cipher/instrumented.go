package cipher

import (
	"context"
	"fmt"
	"strings"
	"time"
	"vic/pkg/domain"
	"vic/pkg/metrics"
	"vic/pkg/serrors"
	"vic/pkg/vic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// outcomeOK is the outcome attribute of a successful operation. Failures use
// the lower-cased error kind, or "error" when the failure has none.
const outcomeOK = "ok"

// instrumented decorates a Cipher with run metrics.
type instrumented struct {
	next Cipher

	operations metric.Int64Counter
	duration   metric.Float64Histogram
	letters    metric.Int64Counter
}

// NewInstrumented wraps next so every call is counted and timed on meter.
// Successful decryptions also count their plaintext letters.
func NewInstrumented(next Cipher, meter metric.Meter) (Cipher, error) {
	operations, err := meter.Int64Counter("vic_operations",
		metric.WithDescription("Cipher operations by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create operations counter: %w", err)
	}
	duration, err := meter.Float64Histogram("vic_operation_duration",
		metric.WithDescription("Cipher operation duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}
	letters, err := meter.Int64Counter("vic_letters",
		metric.WithDescription("Plaintext letters recovered"))
	if err != nil {
		return nil, fmt.Errorf("could not create letters counter: %w", err)
	}

	return &instrumented{
		next:       next,
		operations: operations,
		duration:   duration,
		letters:    letters,
	}, nil
}

func (i *instrumented) Decrypt(ctx context.Context, rec domain.Record) (*domain.Decryption, error) {
	start := time.Now()
	res, err := i.next.Decrypt(ctx, rec)
	i.observe(ctx, "decrypt", start, err)
	if err == nil {
		i.letters.Add(ctx, int64(len(res.Plaintext)))
	}

	return res, err
}

func (i *instrumented) Encrypt(ctx context.Context, rec domain.Record) (string, error) {
	start := time.Now()
	res, err := i.next.Encrypt(ctx, rec)
	i.observe(ctx, "encrypt", start, err)

	return res, err
}

func (i *instrumented) Board(ctx context.Context, rec domain.Record) (*vic.Checkerboard, error) {
	start := time.Now()
	res, err := i.next.Board(ctx, rec)
	i.observe(ctx, "board", start, err)

	return res, err
}

func (i *instrumented) observe(ctx context.Context, operation string, start time.Time, err error) {
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome(err)),
	)
	i.operations.Add(ctx, 1, attrs)
	i.duration.Record(ctx, time.Since(start).Seconds(), attrs)
}

func outcome(err error) string {
	if err == nil {
		return outcomeOK
	}
	if k := serrors.KindOf(err); k != nil {
		return strings.ToLower(k.Error())
	}

	return "error"
}
