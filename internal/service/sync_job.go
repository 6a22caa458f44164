package service

import (
	"context"
	"sync"
	"time"

	"github.com/dokanlabs/dokan-hisab/internal/config"
	"github.com/dokanlabs/dokan-hisab/internal/logger"
)

// syncJob wires the two automatic sync triggers to a [SyncEngine]: an
// offline to online transition (debounced so the run does not race the
// transition itself) and a recurring ticker as a safety net against missed
// events. Both funnel into RunSync, whose guard drops overlapping triggers.
type syncJob struct {
	engine   SyncEngine
	interval time.Duration
	debounce time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	jobCtx context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob with the given trigger timings and registers
// its reconnect handler on notifier. The job is idle until Start is called.
func NewSyncJob(engine SyncEngine, notifier TransitionNotifier, syncCfg config.ClientSync, logger *logger.Logger) SyncJob {
	if syncCfg.Interval <= 0 {
		syncCfg.Interval = 5 * time.Minute
	}

	j := &syncJob{
		engine:   engine,
		interval: syncCfg.Interval,
		debounce: syncCfg.OnlineDebounce,
		logger:   logger,
	}

	notifier.OnOnline(j.onOnline)

	return j
}

// Start implements [SyncJob]. It stops any previously running job, then
// launches the recurring ticker goroutine and arms the reconnect trigger.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.jobCtx = jobCtx
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.engine.RunSync(jobCtx); err != nil {
					j.logger.Err(err).Str("func", "syncJob.Start").Msg("scheduled sync run failed")
				}
			}
		}
	}()
}

// Stop implements [SyncJob]. It cancels the background goroutines and blocks
// until the ticker goroutine has fully exited. Safe to call when the job is
// not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.jobCtx = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// onOnline is the reconnect trigger. It waits out the debounce window, then
// attempts one run; a stopped job ignores the transition.
func (j *syncJob) onOnline() {
	j.mu.Lock()
	jobCtx := j.jobCtx
	j.mu.Unlock()

	if jobCtx == nil {
		return
	}

	go func() {
		select {
		case <-jobCtx.Done():
			return
		case <-time.After(j.debounce):
		}

		if err := j.engine.RunSync(jobCtx); err != nil {
			j.logger.Err(err).Str("func", "syncJob.onOnline").Msg("reconnect sync run failed")
		}
	}()
}
