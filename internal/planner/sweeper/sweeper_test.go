package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeStore struct {
	cutoff  time.Time
	errText string
	n       int64
	err     error
}

func (f *fakeStore) FailStaleEnrichments(_ context.Context, cutoff time.Time, errText string) (int64, error) {
	f.cutoff = cutoff
	f.errText = errText
	return f.n, f.err
}

func TestRunOnce(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	store := &fakeStore{n: 2}
	s := New(store, 15*time.Minute, zap.New(core))
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	n, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	assert.Equal(t, fixed.Add(-15*time.Minute), store.cutoff)
	assert.Equal(t, "enrichment interrupted", store.errText)
	assert.Equal(t, 1, logs.FilterMessage("failed stale enrichments").Len())
}

func TestRunOnce_NothingStale(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := New(&fakeStore{}, time.Minute, zap.New(core))

	n, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, logs.Len())
}

func TestRunOnce_StoreError(t *testing.T) {
	s := New(&fakeStore{err: errors.New("db down")}, time.Minute, nil)

	_, err := s.RunOnce(context.Background())
	assert.EqualError(t, err, "sweep stale enrichments: db down")
}

func TestStart_InvalidSchedule(t *testing.T) {
	s := New(&fakeStore{}, time.Minute, nil)

	err := s.Start(context.Background(), "every now and then")
	assert.Error(t, err)
	s.Stop()
}

func TestStartStop(t *testing.T) {
	s := New(&fakeStore{}, time.Minute, nil)

	require.NoError(t, s.Start(context.Background(), "@every 1h"))
	s.Stop()
}
