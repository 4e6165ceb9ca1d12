package cipher_test

import (
	"context"
	"strings"
	"testing"
	"vic/internal/cipher"
	mockcipher "vic/internal/cipher/mock"
	"vic/pkg/domain"
	"vic/pkg/metrics"
	"vic/pkg/serrors"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newInstrumented(t *testing.T) (*mockcipher.MockCipher, *prometheus.Registry, cipher.Cipher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	next := mockcipher.NewMockCipher(ctrl)

	reg := prometheus.NewRegistry()
	provider, err := metrics.NewProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	c, err := cipher.NewInstrumented(next, provider.Meter("vic/test"))
	require.NoError(t, err)

	return next, reg, c
}

// counterValue sums the counter family whose name starts with prefix over
// the series carrying all the given label values.
func counterValue(t *testing.T, reg *prometheus.Registry, prefix string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	var sum float64
	for _, f := range families {
		if !strings.HasPrefix(f.GetName(), prefix) || f.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, m := range f.GetMetric() {
			if hasLabels(m, labels) {
				sum += m.GetCounter().GetValue()
			}
		}
	}

	return sum
}

func hasLabels(m *dto.Metric, labels map[string]string) bool {
	matched := 0
	for _, l := range m.GetLabel() {
		if v, ok := labels[l.GetName()]; ok && v == l.GetValue() {
			matched++
		}
	}

	return matched == len(labels)
}

func TestInstrumentedDecrypt(t *testing.T) {
	next, reg, c := newInstrumented(t)
	rec := newRecord("DONTDODRUG", "155137300333015351776")

	next.EXPECT().Decrypt(gomock.Any(), rec).Return(&domain.Decryption{Plaintext: "ATTACKATDAWN"}, nil)

	res, err := c.Decrypt(context.Background(), rec)
	require.NoError(t, err)
	require.Equal(t, "ATTACKATDAWN", res.Plaintext)

	require.InDelta(t, 1, counterValue(t, reg, "vic_operations",
		map[string]string{"operation": "decrypt", "outcome": "ok"}), 0)
	require.InDelta(t, 12, counterValue(t, reg, "vic_letters", nil), 0)
}

func TestInstrumentedFailureOutcome(t *testing.T) {
	next, reg, c := newInstrumented(t)
	rec := newRecord("SHORT", "")
	kindErr := &cipher.StageError{
		Stage: cipher.StageDeriveKey,
		Err:   serrors.With(serrors.ErrInvalidInputLength, "too short"),
	}

	next.EXPECT().Decrypt(gomock.Any(), rec).Return(nil, kindErr)
	next.EXPECT().Encrypt(gomock.Any(), rec).Return("", kindErr)

	_, err := c.Decrypt(context.Background(), rec)
	require.ErrorIs(t, err, serrors.ErrInvalidInputLength)
	_, err = c.Encrypt(context.Background(), rec)
	require.ErrorIs(t, err, serrors.ErrInvalidInputLength)

	require.InDelta(t, 1, counterValue(t, reg, "vic_operations",
		map[string]string{"operation": "decrypt", "outcome": "invalid_input_length"}), 0)
	require.InDelta(t, 1, counterValue(t, reg, "vic_operations",
		map[string]string{"operation": "encrypt", "outcome": "invalid_input_length"}), 0)
	require.InDelta(t, 0, counterValue(t, reg, "vic_letters", nil), 0)
}

func TestInstrumentedBoardPassesThrough(t *testing.T) {
	next, reg, c := newInstrumented(t)
	rec := newRecord("DONTDODRUG", "")

	board, err := cipher.New().Board(context.Background(), rec)
	require.NoError(t, err)
	next.EXPECT().Board(gomock.Any(), rec).Return(board, nil)

	got, err := c.Board(context.Background(), rec)
	require.NoError(t, err)
	require.Same(t, board, got)
	require.InDelta(t, 1, counterValue(t, reg, "vic_operations",
		map[string]string{"operation": "board", "outcome": "ok"}), 0)
}
