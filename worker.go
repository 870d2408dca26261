package vrcursor

import "sync"

// motionSink is where dispatched samples land. Satisfied by MouseController.
type motionSink interface {
	applySample(s normalizedSample)
}

// controllerResolver maps a registry id to its controller at dispatch time.
// Returns nil when the controller has been removed; the message is then
// dropped.
type controllerResolver func(id int) motionSink

// motionMessage pairs a pooled event copy with the controller it addresses.
type motionMessage struct {
	id    int
	event *MotionEvent
}

// eventWorker drains an unbounded FIFO queue of motion messages on a single
// goroutine. All normalization and controller mutation happens there, so no
// two samples are ever processed concurrently.
//
// A worker runs at most once: after stop it stays dead and the manager
// builds a fresh one on the next controller creation.
type eventWorker struct {
	resolve controllerResolver

	mu      sync.Mutex
	cond    *sync.Cond
	queue   []motionMessage
	running bool
	stopped bool
	done    chan struct{}

	// Per-controller button latch. Worker goroutine only.
	active map[int]bool
}

func newEventWorker(resolve controllerResolver) *eventWorker {
	w := &eventWorker{
		resolve: resolve,
		active:  make(map[int]bool),
		done:    make(chan struct{}),
	}
	w.cond = sync.NewCond(&w.mu)
	return w
}

// start spins up the worker goroutine. No-op on a running or dead worker.
func (w *eventWorker) start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running || w.stopped {
		return
	}
	w.running = true
	go w.loop()
}

// stop terminates the message loop and discards anything still queued. A
// message already dequeued completes first. Idempotent; blocks until the
// goroutine exits.
func (w *eventWorker) stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.stopped = true
	w.cond.Signal()
	w.mu.Unlock()

	<-w.done
}

// submit enqueues a copy of ev addressed to id. Returns false when the
// worker is not running, true once the copy is queued; queueing is
// fire-and-forget, not processed-on-return. Safe to call from any goroutine;
// blocks only for the queue append.
func (w *eventWorker) submit(id int, ev *MotionEvent) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return false
	}
	w.queue = append(w.queue, motionMessage{id: id, event: obtainMotionEvent(ev)})
	w.cond.Signal()
	return true
}

func (w *eventWorker) loop() {
	defer close(w.done)
	for {
		w.mu.Lock()
		for w.running && len(w.queue) == 0 {
			w.cond.Wait()
		}
		if !w.running {
			for _, msg := range w.queue {
				recycleMotionEvent(msg.event)
			}
			w.queue = nil
			w.mu.Unlock()
			return
		}
		msg := w.queue[0]
		w.queue[0] = motionMessage{}
		w.queue = w.queue[1:]
		w.mu.Unlock()

		w.dispatch(msg.id, msg.event)
		recycleMotionEvent(msg.event)
	}
}

// dispatch replays an event's historical samples oldest first, then the
// current sample, forwarding every accepted normalized sample to the
// addressed controller in order.
func (w *eventWorker) dispatch(id int, ev *MotionEvent) {
	sink := w.resolve(id)
	if sink == nil {
		// Controller removed while the message was in flight.
		delete(w.active, id)
		return
	}

	prevActive := w.active[id]
	for _, h := range ev.History {
		// Historical entries carry positions only; button and scroll
		// transitions belong to the current sample.
		if s, ok := normalize(h.X, h.Y, ev.RangeX, ev.RangeY, ActionMove, 0, prevActive); ok {
			sink.applySample(s)
			prevActive = s.active
		}
	}
	if s, ok := normalize(ev.X, ev.Y, ev.RangeX, ev.RangeY, ev.Action, ev.ScrollY, prevActive); ok {
		sink.applySample(s)
		prevActive = s.active
	}
	w.active[id] = prevActive
}
