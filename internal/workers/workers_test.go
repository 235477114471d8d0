// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-broker/internal/logger"
	"github.com/MKhiriev/go-vault-broker/internal/mock"
	"github.com/MKhiriev/go-vault-broker/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

type funcWorker struct {
	name string
	run  func(ctx context.Context) error
}

func (f *funcWorker) Name() string                  { return f.name }
func (f *funcWorker) Run(ctx context.Context) error { return f.run(ctx) }

func TestWorkers_Run_AllFinish(t *testing.T) {
	var calls atomic.Int32
	w := &funcWorker{name: "once", run: func(context.Context) error {
		calls.Add(1)
		return nil
	}}

	err := NewWorkers(logger.Nop(), w, w, w).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers(logger.Nop()).Run(context.Background()))
}

func TestWorkers_Run_ErrorCancelsOthers(t *testing.T) {
	boom := errors.New("boom")
	failing := &funcWorker{name: "failing", run: func(context.Context) error { return boom }}
	blocking := &funcWorker{name: "blocking", run: func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	}}

	done := make(chan error, 1)
	go func() { done <- NewWorkers(logger.Nop(), blocking, failing).Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
		assert.ErrorContains(t, err, "failing")
	case <-time.After(5 * time.Second):
		t.Fatal("workers did not stop")
	}
}

type countingSweeper struct{ calls atomic.Int32 }

func (c *countingSweeper) Sweep() int {
	c.calls.Add(1)
	return 1
}

func TestSessionSweeper_SweepsUntilCancelled(t *testing.T) {
	sweeper := &countingSweeper{}
	s := NewSessionSweeper(sweeper, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}

type scriptedChecker struct {
	mu      sync.Mutex
	results []error
}

func (s *scriptedChecker) Check(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.results[0]
	s.results = s.results[1:]
	return err
}

type recordingLocker struct{ reasons []string }

func (r *recordingLocker) LockAll(reason string) { r.reasons = append(r.reasons, reason) }

func TestBackendWatchdog_LocksOncePerOutage(t *testing.T) {
	down := errors.New("connection refused")
	checker := &scriptedChecker{results: []error{nil, down, down, nil, down}}
	locker := &recordingLocker{}

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	w := NewBackendWatchdog(checker, locker, time.Second, log)

	for i := 0; i < 5; i++ {
		w.check(context.Background())
	}

	assert.Equal(t, []string{backendDownReason, backendDownReason}, locker.reasons)
	assert.Contains(t, buf.String(), `"audit":"backend_down"`)
	assert.Contains(t, buf.String(), "storage reachable again")
}

func TestBackendWatchdog_IgnoresFailureDuringShutdown(t *testing.T) {
	checker := &scriptedChecker{results: []error{context.Canceled}}
	locker := &recordingLocker{}
	w := NewBackendWatchdog(checker, locker, time.Second, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.check(ctx)

	assert.Empty(t, locker.reasons)
}

func TestMetricsReporter_ReportsOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mock.NewMockMetricsService(ctrl)
	metrics.EXPECT().Collect(gomock.Any()).Return(models.VaultMetrics{
		Tables: map[string]models.TableStats{
			"hosts": {Records: 2, Fields: map[string]models.FieldStats{"password": {Encrypted: 1, Legacy: 1}}},
		},
		KeyTiers: map[string]string{"vault": "configured"},
	}, nil).MinTimes(1)

	var buf syncBuffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	r := NewMetricsReporter(metrics, time.Hour, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	assert.Eventually(t, func() bool { return strings.Contains(buf.String(), "vault metrics") }, 2*time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Contains(t, buf.String(), `"legacy_fields":1`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestMetricsReporter_CollectErrorIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mock.NewMockMetricsService(ctrl)
	metrics.EXPECT().Collect(gomock.Any()).Return(models.VaultMetrics{}, errors.New("select failed"))

	var buf bytes.Buffer
	r := NewMetricsReporter(metrics, time.Hour, &logger.Logger{Logger: zerolog.New(&buf)})
	r.report(context.Background())

	assert.Contains(t, buf.String(), "collecting vault metrics failed")
}

func TestFieldMigrator_RunsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	migration := mock.NewMockMigrationService(ctrl)
	migration.EXPECT().MigrateFields(gomock.Any()).Return(models.MigrationReport{RowsScanned: 3, FieldsSealed: 2}, nil)

	var buf bytes.Buffer
	err := NewFieldMigrator(migration, &logger.Logger{Logger: zerolog.New(&buf)}).Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"fields_sealed":2`)
}

func TestFieldMigrator_FailureDoesNotStopWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	migration := mock.NewMockMigrationService(ctrl)
	migration.EXPECT().MigrateFields(gomock.Any()).Return(models.MigrationReport{}, errors.New("backend down"))

	err := NewFieldMigrator(migration, logger.Nop()).Run(context.Background())
	assert.NoError(t, err)
}
