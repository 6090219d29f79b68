// Package testutil provides in-memory fakes for application-layer tests.
// The fakes are safe for concurrent use so tests can exercise the real
// concurrency behavior of the use cases.
package testutil

import (
	"context"
	"sync"

	"github.com/lumira-inc/lumira/internal/shared/logger"
)

// SerialTxRunner is an in-memory stand-in for the real transaction manager.
// It serializes transactions with a mutex, which models what the database's
// row locks provide in production: two settlements for the same rows never
// interleave. It does not emulate rollback of fake-repository writes; tests
// assert on balances and statuses, which the fakes keep atomic themselves.
type SerialTxRunner struct {
	mu sync.Mutex

	// BeginErr, when set, fails every transaction before fn runs.
	BeginErr error

	Calls int
}

func (r *SerialTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.BeginErr != nil {
		return r.BeginErr
	}
	return fn(ctx)
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() logger.Interface {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debugw(string, ...any)          {}
func (nopLogger) Infow(string, ...any)           {}
func (nopLogger) Warnw(string, ...any)           {}
func (nopLogger) Errorw(string, ...any)          {}
func (nopLogger) With(...any) logger.Interface   { return nopLogger{} }
func (nopLogger) Named(string) logger.Interface  { return nopLogger{} }
