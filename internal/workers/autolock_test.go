// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jortega/trackvault/internal/logger"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}

	ws := NewWorkers(w1, w2)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not panic on an empty or nil workers list.
	NewWorkers().Run()
	(&Workers{}).Run()
}

// mockLocker counts LockIfIdle calls and reports a lock on the first call.
type mockLocker struct {
	mu      sync.Mutex
	calls   int
	maxIdle time.Duration
}

func (m *mockLocker) LockIfIdle(maxIdle time.Duration) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.maxIdle = maxIdle
	return m.calls == 1
}

func (m *mockLocker) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func TestAutoLockWorker_DisabledWhenMaxIdleIsZero(t *testing.T) {
	locker := &mockLocker{}

	w := NewAutoLockWorker(context.Background(), locker, 0, logger.Nop())
	w.Run()

	time.Sleep(20 * time.Millisecond)
	if got := locker.callCount(); got != 0 {
		t.Errorf("expected no LockIfIdle calls, got %d", got)
	}
}

func TestAutoLockWorker_StopsOnContextCancel(t *testing.T) {
	locker := &mockLocker{}
	ctx, cancel := context.WithCancel(context.Background())

	w := NewAutoLockWorker(ctx, locker, time.Hour, logger.Nop())
	// The minimum tick is one second; shorten it for the test.
	w.interval = 5 * time.Millisecond
	w.Run()

	time.Sleep(25 * time.Millisecond)
	cancel()
	time.Sleep(10 * time.Millisecond)

	calls := locker.callCount()
	if calls == 0 {
		t.Fatal("expected at least one LockIfIdle call before cancel")
	}
	if locker.maxIdle != time.Hour {
		t.Errorf("expected maxIdle passed through, got %v", locker.maxIdle)
	}

	time.Sleep(25 * time.Millisecond)
	if got := locker.callCount(); got != calls {
		t.Errorf("worker kept ticking after cancel: %d -> %d", calls, got)
	}
}
