// Package clockface renders the header clock. It runs on its own ticker and
// shares nothing with the animation engine.
package clockface

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/log"
)

const (
	TimeLayout = "15:04:05"
	DateLayout = "Mon Jan 2"
)

// Face holds the latest rendered time and date strings.
type Face struct {
	clk      clock.Clock
	interval time.Duration
	logger   *log.Logger

	text atomic.Pointer[string]
	date atomic.Pointer[string]

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New returns a stopped face. A nil clk uses the wall clock.
func New(clk clock.Clock, interval time.Duration) *Face {
	if clk == nil {
		clk = clock.New()
	}
	if interval <= 0 {
		interval = time.Second
	}
	f := &Face{clk: clk, interval: interval, logger: log.Default()}
	f.render()
	return f
}

// SetLogger replaces the logger used for lifecycle messages.
func (f *Face) SetLogger(l *log.Logger) {
	if l != nil {
		f.logger = l
	}
}

// Start launches the ticker goroutine. It stops when ctx is done or Stop is
// called. Starting a running face does nothing.
func (f *Face) Start(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.logger.Warn("clock face already running")
		return
	}
	ctx, f.cancel = context.WithCancel(ctx)
	t := f.clk.Ticker(f.interval)
	f.render()

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		defer t.Stop()
		f.logger.Debug("clock face started", "interval", f.interval)
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				f.render()
			}
		}
	}()
}

// Stop cancels the ticker goroutine and waits for it to exit.
func (f *Face) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel == nil {
		return
	}
	f.cancel()
	f.wg.Wait()
	f.cancel = nil
	f.logger.Debug("clock face stopped")
}

// Text is the current time as HH:MM:SS.
func (f *Face) Text() string { return *f.text.Load() }

// Date is the current date line.
func (f *Face) Date() string { return *f.date.Load() }

func (f *Face) render() {
	now := f.clk.Now()
	text := now.Format(TimeLayout)
	date := now.Format(DateLayout)
	f.text.Store(&text)
	f.date.Store(&date)
}
