// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

package workers

import (
	"context"
	"time"

	"github.com/jortega/trackvault/internal/logger"
)

// IdleLocker is the slice of the vault session the auto-lock worker needs:
// lock the session if it has been idle for at least the given duration and
// report whether a lock happened.
type IdleLocker interface {
	LockIfIdle(maxIdle time.Duration) bool
}

// AutoLockWorker relocks an idle vault session on a fixed cadence. It spawns
// one goroutine in Run and stops when its context is cancelled.
type AutoLockWorker struct {
	session  IdleLocker
	maxIdle  time.Duration
	interval time.Duration

	ctx    context.Context
	logger *logger.Logger
}

// NewAutoLockWorker builds the worker. maxIdle is the idle threshold after
// which the session is locked; the check runs every maxIdle/4, at least
// once a second. A non-positive maxIdle disables the worker.
func NewAutoLockWorker(ctx context.Context, session IdleLocker, maxIdle time.Duration, logger *logger.Logger) *AutoLockWorker {
	interval := maxIdle / 4
	if interval < time.Second {
		interval = time.Second
	}

	return &AutoLockWorker{
		session:  session,
		maxIdle:  maxIdle,
		interval: interval,
		ctx:      ctx,
		logger:   logger,
	}
}

// Run implements [Worker].
func (w *AutoLockWorker) Run() {
	if w.maxIdle <= 0 {
		w.logger.Debug().Msg("auto-lock disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				if w.session.LockIfIdle(w.maxIdle) {
					w.logger.Info().Dur("max_idle", w.maxIdle).Msg("vault locked after inactivity")
				}
			}
		}
	}()
}
