package reveal

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrLoopStarted = errors.New("reveal: loop already started")

// Loop serializes every coordinator event onto one goroutine. Timer
// callbacks scheduled through it are queued rather than run on the timer's
// goroutine.
type Loop struct {
	mu      sync.Mutex
	pending []func()
	stopped bool

	wake    chan struct{}
	started atomic.Bool
}

// NewLoop returns a loop with room for size events before its queue grows.
func NewLoop(size int) *Loop {
	if size <= 0 {
		size = 64
	}
	return &Loop{
		pending: make([]func(), 0, size),
		wake:    make(chan struct{}, 1),
	}
}

// Post enqueues f without blocking, before or after Run starts. It returns
// false once the loop has stopped.
func (l *Loop) Post(f func()) bool {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return false
	}
	l.pending = append(l.pending, f)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

func (l *Loop) Now() time.Time { return time.Now() }

func (l *Loop) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, func() { l.Post(f) })
}

// Run processes events in posting order until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return ErrLoopStarted
	}
	defer l.stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
		for batch := l.take(); len(batch) > 0; batch = l.take() {
			for _, f := range batch {
				if err := ctx.Err(); err != nil {
					return err
				}
				f()
			}
		}
	}
}

func (l *Loop) take() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	batch := l.pending
	l.pending = nil
	return batch
}

func (l *Loop) stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopped = true
	l.pending = nil
}
