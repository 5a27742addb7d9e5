// Package task runs fire-and-forget work with per-task panic isolation.
package task

import (
	"sync"

	"github.com/rs/zerolog"
)

// Runner launches tasks on their own goroutines. A panicking task is
// recovered and logged so sibling tasks and the caller keep running.
type Runner struct {
	log zerolog.Logger
	wg  sync.WaitGroup
}

// NewRunner creates a runner that reports panics to log.
func NewRunner(log zerolog.Logger) *Runner {
	return &Runner{log: log}
}

// Go runs fn on a new goroutine without waiting for it. name tags the
// task in panic reports.
func (r *Runner) Go(name string, fn func()) {
	r.wg.Go(func() {
		defer func() {
			if p := recover(); p != nil {
				r.log.Error().Str("task", name).Interface("panic", p).Msg("task panicked")
			}
		}()
		fn()
	})
}

// Wait blocks until every task launched so far has returned.
func (r *Runner) Wait() {
	r.wg.Wait()
}
