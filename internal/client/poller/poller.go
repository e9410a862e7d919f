// Package poller runs a fetch function on a fixed interval for as long as
// the page that owns it is open.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/safepaws/internal/logging"
)

// Func is one poll. Returned errors are logged; the loop keeps going.
type Func func(ctx context.Context) error

// Poller calls its Func once on Start, then every interval and on every
// Trigger, until Stop is called or the Start context is cancelled. Runs never
// overlap. Triggers that arrive during a run are coalesced into one.
type Poller struct {
	name     string
	interval time.Duration
	fn       Func
	logger   logging.Logger

	trigger chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(name string, interval time.Duration, fn Func, logger logging.Logger) *Poller {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Poller{
		name:     name,
		interval: interval,
		fn:       fn,
		logger:   logger.With("poller", name),
		trigger:  make(chan struct{}, 1),
	}
}

func (p *Poller) Name() string { return p.name }

// Start launches the loop. Calling Start on a running poller does nothing.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.loop(ctx, p.done)
}

// Running reports whether the loop goroutine is alive.
func (p *Poller) Running() bool {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()

	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

// Trigger requests an extra run as soon as the current one (if any)
// finishes. It never blocks.
func (p *Poller) Trigger() {
	select {
	case p.trigger <- struct{}{}:
	default:
	}
}

// Stop cancels the loop and waits for it to exit. It is safe to call on a
// stopped or never-started poller, and the poller may be started again.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (p *Poller) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.run(ctx)

	for {
		select {
		case <-ticker.C:
			p.run(ctx)
		case <-p.trigger:
			p.run(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (p *Poller) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := p.fn(ctx); err != nil && ctx.Err() == nil {
		p.logger.Warn(ctx, "poll failed", "error", err)
	}
}
