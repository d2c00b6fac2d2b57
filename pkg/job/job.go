package job

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Runner executes registered background jobs on fixed intervals until the
// context is canceled.
type Runner struct {
	l    *slog.Logger
	jobs []job
	wg   sync.WaitGroup
}

func NewRunner(l *slog.Logger) *Runner {
	return &Runner{l: l}
}

func (r *Runner) Register(name string, interval time.Duration, fn func(ctx context.Context) error) *Runner {
	r.jobs = append(r.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return r
}

func (r *Runner) Start(ctx context.Context) {
	for _, j := range r.jobs {
		r.wg.Add(1)

		go r.run(ctx, j)
	}
}

func (r *Runner) run(ctx context.Context, j job) {
	defer r.wg.Done()

	l := r.l.With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		err := r.withRecover(ctx, l, j)
		if err != nil {
			l.Error("job failed", "error", err)
		}

		select {
		case <-ctx.Done():
			l.Debug("context done")
			return

		case <-ticker.C:
		}
	}
}

func (r *Runner) withRecover(ctx context.Context, l *slog.Logger, j job) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			l.Error("job panic", "error", rec, "stack", string(debug.Stack()))
		}
	}()

	return j.fn(ctx)
}

// Stop blocks until all running jobs return.
func (r *Runner) Stop() {
	r.wg.Wait()
}
