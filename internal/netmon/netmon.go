package netmon

import (
	"context"
	"sync"
	"time"

	"github.com/dokanlabs/dokan-hisab/internal/logger"
	"github.com/dokanlabs/dokan-hisab/models"
)

// Monitor tracks device connectivity and notifies registered handlers of
// transitions. It seeds its state once from the wrapped [Signal] at
// construction and is purely event-driven afterwards.
//
// Duplicate events from the signal are de-duplicated by comparing against
// the previously recorded state, so handlers fire exactly once per
// transition. lastOnlineAt moves only on an offline to online transition.
type Monitor struct {
	signal Signal
	logger *logger.Logger
	now    func() time.Time

	mu           sync.Mutex
	isOnline     bool
	lastOnlineAt time.Time
	onOnline     []func()
	onOffline    []func()

	jobMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMonitor constructs a Monitor seeded from signal.Current(). The monitor
// does not consume events until Start is called.
func NewMonitor(signal Signal, logger *logger.Logger) *Monitor {
	m := &Monitor{
		signal: signal,
		logger: logger,
		now:    time.Now,
	}

	m.isOnline = signal.Current()
	if m.isOnline {
		m.lastOnlineAt = m.now()
	}
	logger.Info().Str("func", "NewMonitor").Bool("online", m.isOnline).Msg("connectivity state seeded")

	return m
}

// CurrentState returns the in-memory connectivity snapshot. It never blocks
// on the network.
func (m *Monitor) CurrentState() models.ConnectivityState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return models.ConnectivityState{
		IsOnline:     m.isOnline,
		LastOnlineAt: m.lastOnlineAt,
	}
}

// OnOnline registers handler to run once per offline to online transition.
func (m *Monitor) OnOnline(handler func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onOnline = append(m.onOnline, handler)
}

// OnOffline registers handler to run once per online to offline transition.
func (m *Monitor) OnOffline(handler func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onOffline = append(m.onOffline, handler)
}

// Start stops any previous consumer, then launches a background goroutine
// that applies signal events until ctx is cancelled or Stop is called.
func (m *Monitor) Start(ctx context.Context) {
	m.Stop()

	m.jobMu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.jobMu.Unlock()

	go func() {
		defer m.wg.Done()

		events := m.signal.Events()
		for {
			select {
			case <-jobCtx.Done():
				return
			case online, ok := <-events:
				if !ok {
					return
				}
				m.report(online)
			}
		}
	}()
}

// Stop cancels the event consumer and blocks until it has exited. Safe to
// call when the monitor is not running.
func (m *Monitor) Stop() {
	m.jobMu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.jobMu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// report applies one signal event. Repeated same-state events are dropped;
// handlers run outside the state lock in registration order.
func (m *Monitor) report(online bool) {
	m.mu.Lock()

	if online == m.isOnline {
		m.mu.Unlock()
		return
	}

	m.isOnline = online

	var handlers []func()
	if online {
		m.lastOnlineAt = m.now()
		handlers = append(handlers, m.onOnline...)
	} else {
		handlers = append(handlers, m.onOffline...)
	}
	m.mu.Unlock()

	m.logger.Info().Str("func", "Monitor.report").Bool("online", online).Msg("connectivity transition")

	for _, handler := range handlers {
		handler()
	}
}
