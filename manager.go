package vrcursor

import "sync"

// MouseDeviceManager owns the registry of mouse cursor controllers and the
// event worker that processes their raw samples.
//
// The worker starts lazily on the first CreateController and stops when the
// last controller is removed; a later CreateController builds a fresh
// worker. Controller ids are monotonic and never reused, so a stale id held
// across an empty period can never address a new controller.
type MouseDeviceManager struct {
	provider SceneProvider

	mu          sync.Mutex
	controllers map[int]*MouseController
	worker      *eventWorker
	nextID      int
	debug       bool
}

// NewMouseDeviceManager creates a manager reading camera state from
// provider. No worker is started until the first controller is created.
func NewMouseDeviceManager(provider SceneProvider) *MouseDeviceManager {
	return &MouseDeviceManager{
		provider:    provider,
		controllers: make(map[int]*MouseController),
	}
}

// SetDebugMode toggles lifecycle diagnostics on stderr.
func (m *MouseDeviceManager) SetDebugMode(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.debug = enabled
}

// CreateController allocates, registers, and returns a new mouse cursor
// controller. The first call (and the first call after the registry empties)
// starts the event worker.
func (m *MouseDeviceManager) CreateController() *MouseController {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.worker == nil {
		m.debugLogf("starting event worker")
		m.worker = newEventWorker(m.lookup)
		m.worker.start()
	}

	id := m.nextID
	m.nextID++
	c := newMouseController(id, m, m.provider)
	m.controllers[id] = c
	m.debugLogf("created %s controller %d", c.Type(), id)
	return c
}

// RemoveController removes c from the registry. Removing the last controller
// stops the event worker; anything still queued for it is discarded. Unknown
// or nil controllers are a no-op.
func (m *MouseDeviceManager) RemoveController(c *MouseController) {
	if c == nil {
		return
	}
	m.mu.Lock()
	if _, ok := m.controllers[c.id]; !ok {
		m.mu.Unlock()
		return
	}
	delete(m.controllers, c.id)
	m.debugLogf("removed controller %d", c.id)

	var w *eventWorker
	if len(m.controllers) == 0 {
		w, m.worker = m.worker, nil
	}
	m.mu.Unlock()

	// Stop outside the lock: the worker may be mid-dispatch in lookup.
	if w != nil {
		m.debugLogf("stopping event worker")
		w.stop()
	}
}

// Stop unconditionally stops the event worker if one is running. Registered
// controllers stay in the registry but no longer receive samples until a new
// controller creation restarts a worker. Idempotent.
func (m *MouseDeviceManager) Stop() {
	m.mu.Lock()
	w := m.worker
	m.worker = nil
	m.mu.Unlock()

	if w != nil {
		m.debugLogf("stopping event worker")
		w.stop()
	}
}

// Controllers returns a snapshot of the registered controllers.
func (m *MouseDeviceManager) Controllers() []*MouseController {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*MouseController, 0, len(m.controllers))
	for _, c := range m.controllers {
		out = append(out, c)
	}
	return out
}

// submit hands a raw sample to the worker on behalf of controller id.
func (m *MouseDeviceManager) submit(id int, ev *MotionEvent) bool {
	m.mu.Lock()
	w := m.worker
	m.mu.Unlock()
	if w == nil {
		return false
	}
	return w.submit(id, ev)
}

// lookup resolves a registry id at dispatch time. Called from the worker
// goroutine; returns nil for ids removed while their messages were in
// flight.
func (m *MouseDeviceManager) lookup(id int) motionSink {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.controllers[id]; ok {
		return c
	}
	return nil
}
