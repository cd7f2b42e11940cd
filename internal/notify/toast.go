package notify

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Toast is a transient notification that dismisses itself after Timer of
// unpaused display time.
type Toast struct {
	Msg              string
	Icon             Icon
	Position         Position
	Timer            time.Duration
	TimerProgressBar bool

	clock clockwork.Clock

	mu        sync.Mutex
	remaining time.Duration
	startedAt time.Time
	timer     clockwork.Timer
	paused    bool
	closed    bool
	done      chan struct{}
}

func newToast(opts ToastOptions, clock clockwork.Clock) *Toast {
	return &Toast{
		Msg:              opts.Msg,
		Icon:             opts.Icon,
		Position:         opts.Position,
		Timer:            opts.Timer,
		TimerProgressBar: true,
		clock:            clock,
		remaining:        opts.Timer,
		done:             make(chan struct{}),
	}
}

func (t *Toast) start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || t.timer != nil {
		return
	}
	t.startedAt = t.clock.Now()
	t.timer = t.clock.AfterFunc(t.remaining, t.expire)
}

// Pause stops the countdown; presenters call it when the pointer enters the toast.
func (t *Toast) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || t.paused || t.timer == nil {
		return
	}
	if !t.timer.Stop() {
		return
	}
	t.remaining -= t.clock.Since(t.startedAt)
	if t.remaining < 0 {
		t.remaining = 0
	}
	t.paused = true
}

// Resume restarts the countdown with whatever time was left.
func (t *Toast) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || !t.paused {
		return
	}
	t.paused = false
	t.startedAt = t.clock.Now()
	t.timer = t.clock.AfterFunc(t.remaining, t.expire)
}

// Remaining is the display time left before the toast dismisses itself.
func (t *Toast) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return 0
	}
	if t.paused || t.timer == nil {
		return t.remaining
	}
	left := t.remaining - t.clock.Since(t.startedAt)
	if left < 0 {
		return 0
	}
	return left
}

func (t *Toast) Paused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.paused
}

// Close dismisses the toast early.
func (t *Toast) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.finish()
}

// Done is closed once the toast has been dismissed.
func (t *Toast) Done() <-chan struct{} {
	return t.done
}

func (t *Toast) expire() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.finish()
}

func (t *Toast) finish() {
	if t.closed {
		return
	}
	t.closed = true
	close(t.done)
}
