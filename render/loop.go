package render

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

type TimerID uint64

// Loop is a single-threaded host event loop. Post may be called from any
// goroutine; callbacks only ever run inside RunPending or Run, on the
// goroutine calling them. Cells touched by callbacks need no locking as long
// as that is the only goroutine mutating them.
type Loop struct {
	clock clockz.Clock
	log   *slog.Logger

	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	timers map[TimerID]*timer
	lastID TimerID
}

type timer struct {
	c     <-chan time.Time
	halt  func()
	every time.Duration
	fn    func()
	stop  chan struct{}
}

func newLoop(clock clockz.Clock, log *slog.Logger) *Loop {
	return &Loop{
		clock:  clock,
		log:    log,
		wake:   make(chan struct{}, 1),
		timers: map[TimerID]*timer{},
	}
}

// Post queues fn to run on the loop.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// SetTimeout runs fn once on the loop after d.
func (l *Loop) SetTimeout(d time.Duration, fn func()) TimerID {
	return l.schedule(d, 0, fn)
}

// SetInterval runs fn on the loop every d until cleared.
func (l *Loop) SetInterval(d time.Duration, fn func()) TimerID {
	return l.schedule(d, d, fn)
}

// Sleep returns a channel closed on the loop once d has elapsed. It is meant
// for goroutines handing work back to the loop, such as a widget.Future
// body; receiving from it on the loop goroutine itself would deadlock.
func (l *Loop) Sleep(d time.Duration) <-chan struct{} {
	done := make(chan struct{})
	l.SetTimeout(d, func() { close(done) })
	return done
}

// Clear cancels a timeout or interval. A firing already queued but not yet
// run is dropped as well. Unknown ids are ignored.
func (l *Loop) Clear(id TimerID) {
	l.mu.Lock()
	t, ok := l.timers[id]
	delete(l.timers, id)
	l.mu.Unlock()
	if ok {
		close(t.stop)
	}
}

// Pending is the number of queued callbacks plus armed timers.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue) + len(l.timers)
}

// schedule arms a one-shot timer, or a ticker when every is positive. A
// fired clockz timer cannot be re-armed reliably, so intervals never Reset.
func (l *Loop) schedule(d, every time.Duration, fn func()) TimerID {
	t := &timer{
		every: every,
		fn:    fn,
		stop:  make(chan struct{}),
	}
	if every > 0 {
		tk := l.clock.NewTicker(every)
		t.c = tk.C()
		t.halt = func() { tk.Stop() }
	} else {
		tm := l.clock.NewTimer(d)
		t.c = tm.C()
		t.halt = func() { tm.Stop() }
	}
	l.mu.Lock()
	l.lastID++
	id := l.lastID
	l.timers[id] = t
	l.mu.Unlock()

	go l.watch(id, t)
	return id
}

func (l *Loop) watch(id TimerID, t *timer) {
	for {
		select {
		case <-t.stop:
			t.halt()
			return
		case <-t.c:
			l.Post(func() { l.fire(id) })
			if t.every <= 0 {
				return
			}
		}
	}
}

func (l *Loop) fire(id TimerID) {
	l.mu.Lock()
	t, ok := l.timers[id]
	if ok && t.every <= 0 {
		delete(l.timers, id)
	}
	l.mu.Unlock()
	if !ok || t.fn == nil {
		return
	}
	t.fn()
}

// RunPending runs the callbacks queued so far and returns how many ran.
// Callbacks they post wait for the next call.
func (l *Loop) RunPending() int {
	l.mu.Lock()
	batch := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Run processes callbacks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	start := l.clock.Now()
	ran := 0
	defer func() {
		l.log.Debug("loop stopped", "callbacks", ran, "elapsed", l.clock.Since(start))
	}()
	for {
		ran += l.RunPending()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}
