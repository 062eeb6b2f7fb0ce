package when

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Environment is the host contract the core consumes and nothing more: a
// microtask queue and a pair of timer primitives. The core only calls these
// three operations and owns no poller; GoroutineEnvironment below is the one
// implementation the package bundles, and callers may supply their own
// (see doc.go).
type Environment interface {
	// Enqueue schedules task to run after the current call stack unwinds.
	// Implementations must run task exactly once and must preserve FIFO
	// order for enqueues issued from the same turn.
	Enqueue(task func())

	// SetTimer runs fn after at least d elapses and returns an opaque
	// handle suitable for CancelTimer.
	SetTimer(fn func(), d time.Duration) any

	// CancelTimer best-effort cancels a timer started by SetTimer.
	CancelTimer(handle any)
}

// environmentLogger is an optional capability an Environment may implement
// to supply the Factory's ambient Logger (see logging.go). Environments
// that don't implement it leave the Factory with a no-op logger.
type environmentLogger interface {
	Logger() Logger
}

// GoroutineEnvironment is the library's bundled Environment: a single
// goroutine drains a buffered task channel, giving FIFO-per-turn ordering.
// Timers are backed by
// time.AfterFunc, with firing handed back through the same queue so a timer
// callback is never observed racing a queued microtask.
//
// This is deliberately the only Environment the library ships — callers
// embedding a real event loop (for example one built around an OS poller)
// supply their own implementation instead of forcing everyone through a
// goroutine-per-loop model.
type GoroutineEnvironment struct {
	tasks     chan func()
	logger    Logger
	done      chan struct{}
	closeOnce sync.Once
}

// Option configures a GoroutineEnvironment.
type Option func(*envConfig)

type envConfig struct {
	queueSize int
	logger    Logger
}

// WithLogger overrides the default zerolog-backed logger.
func WithLogger(logger Logger) Option {
	return func(c *envConfig) { c.logger = logger }
}

// WithQueueSize overrides the default microtask queue buffer size.
func WithQueueSize(n int) Option {
	return func(c *envConfig) {
		if n > 0 {
			c.queueSize = n
		}
	}
}

// NewGoroutineEnvironment starts a GoroutineEnvironment's drain goroutine
// and returns it. Call Shutdown to stop the goroutine.
func NewGoroutineEnvironment(opts ...Option) *GoroutineEnvironment {
	cfg := envConfig{
		queueSize: 256,
		logger:    NewZerologLogger(zerolog.New(os.Stderr).With().Timestamp().Logger()),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &GoroutineEnvironment{
		tasks:  make(chan func(), cfg.queueSize),
		logger: cfg.logger,
		done:   make(chan struct{}),
	}

	go e.run()

	return e
}

func (e *GoroutineEnvironment) run() {
	for {
		select {
		case task := <-e.tasks:
			task()
		case <-e.done:
			return
		}
	}
}

// Enqueue implements Environment.
func (e *GoroutineEnvironment) Enqueue(task func()) {
	e.tasks <- task
}

// SetTimer implements Environment using time.AfterFunc; the fired callback
// is itself routed back through Enqueue so it never races a queued task.
func (e *GoroutineEnvironment) SetTimer(fn func(), d time.Duration) any {
	return time.AfterFunc(d, func() {
		e.Enqueue(fn)
	})
}

// CancelTimer implements Environment.
func (e *GoroutineEnvironment) CancelTimer(handle any) {
	if t, ok := handle.(*time.Timer); ok {
		t.Stop()
	}
}

// Logger implements environmentLogger.
func (e *GoroutineEnvironment) Logger() Logger {
	return e.logger
}

// Shutdown stops the drain goroutine. Safe to call multiple times.
func (e *GoroutineEnvironment) Shutdown() {
	e.closeOnce.Do(func() { close(e.done) })
}
