package netmon

import (
	"context"
	"sync"
	"time"

	"github.com/dokanlabs/dokan-hisab/internal/logger"
)

// Pinger is the one remote call the prober needs: a cheap health check that
// fails when the server is unreachable. The HTTP adapter satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Prober is the concrete platform signal in this deployment: it derives the
// online/offline state from periodic health checks against the remote ledger
// API and publishes state changes on its event channel.
type Prober struct {
	pinger   Pinger
	interval time.Duration
	logger   *logger.Logger

	events chan bool

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProber constructs a Prober checking pinger every interval. The prober
// is idle until Start is called.
func NewProber(pinger Pinger, interval time.Duration, logger *logger.Logger) *Prober {
	if interval <= 0 {
		interval = 10 * time.Second
	}

	return &Prober{
		pinger:   pinger,
		interval: interval,
		logger:   logger,
		events:   make(chan bool, 8),
	}
}

// Current implements [Signal] with one synchronous health check, bounded by
// the probe interval so a hung server cannot stall construction.
func (p *Prober) Current() bool {
	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()

	return p.pinger.Ping(ctx) == nil
}

// Events implements [Signal].
func (p *Prober) Events() <-chan bool {
	return p.events
}

// Start stops any previous probe loop, then launches a background goroutine
// that probes every interval and publishes the observed state. The goroutine
// exits when ctx is cancelled or Stop is called.
func (p *Prober) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				online := p.pinger.Ping(jobCtx) == nil

				// Non-blocking publish: a full channel means the consumer
				// is behind, and a newer probe will report again shortly.
				select {
				case p.events <- online:
				default:
					p.logger.Debug().Str("func", "Prober.Start").Msg("event channel full, probe result dropped")
				}
			}
		}
	}()
}

// Stop cancels the probe loop and blocks until it has exited. Safe to call
// when the prober is not running.
func (p *Prober) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
