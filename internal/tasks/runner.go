// Package tasks runs fire-and-forget side tasks outside the triggering
// transaction: the visual-quote analysis and the inventory debit.
package tasks

import (
	"context"
	"log"
	"sync"
	"time"
)

const defaultTaskTimeout = 5 * time.Minute

// Runner executes tasks on background goroutines. Task failures are logged,
// never propagated: by the time a task runs its original caller has already
// returned, so failures must be converted into job-state changes by the task
// itself.
type Runner struct {
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = defaultTaskTimeout
	}
	return &Runner{timeout: timeout}
}

// Go schedules fn on its own goroutine with a fresh deadline-bound context.
func (r *Runner) Go(name string, fn func(ctx context.Context) error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		log.Printf("[tasks][runner] task start name=%s", name)
		if err := fn(ctx); err != nil {
			log.Printf("[tasks][runner] task failed name=%s err=%v", name, err)
			return
		}
		log.Printf("[tasks][runner] task done name=%s", name)
	}()
}

// Wait blocks until all scheduled tasks finish. Used on shutdown.
func (r *Runner) Wait() {
	r.wg.Wait()
}
