package main

import (
	"context"
	"errors"
	"testing"
	"vic/internal/cipher"
	"vic/pkg/logger"
	"vic/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReportFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want map[string]any
	}{
		{
			name: "stage with semantic error",
			err: &cipher.StageError{
				Stage: cipher.StageDecode,
				Err:   serrors.With(serrors.ErrCodeNotFound, "no letter for code %q", "9"),
			},
			want: map[string]any{
				"stage":  cipher.StageDecode,
				"kind":   "CODE_NOT_FOUND",
				"detail": `no letter for code "9"`,
			},
		},
		{
			name: "bare kind has no detail",
			err:  serrors.Wrap(serrors.ErrInvalidRecord, errors.New("missing"), ""),
			want: map[string]any{
				"kind": "INVALID_RECORD",
			},
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.ErrorLevel)
			ctx := logger.WithLogger(context.Background(), zap.New(core))

			reportFailure(ctx, tt.err)

			entries := logs.AllUntimed()
			require.Len(t, entries, 1)
			require.Equal(t, "cipher run failed", entries[0].Message)

			fields := entries[0].ContextMap()
			require.Equal(t, tt.err.Error(), fields["error"])
			delete(fields, "error")
			require.Equal(t, tt.want, fields)
		})
	}
}
