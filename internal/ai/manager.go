package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTickInterval is one simulation tick (20 ticks per second).
const DefaultTickInterval = 50 * time.Millisecond

// TickHook runs on the tick goroutine before controllers are ticked.
type TickHook func(tick uint64)

// TickManager manages AI ticks for all registered actors
type TickManager struct {
	controllers     sync.Map // objectID → Controller
	interval        time.Duration
	ticker          *time.Ticker
	stopCh          chan struct{}
	stopOnce        sync.Once
	controllerCount atomic.Int32 // cached count of controllers (O(1) access)
	tick            atomic.Uint64

	hooksMu sync.Mutex
	hooks   []TickHook
}

// NewTickManager creates new AI tick manager. Zero interval means DefaultTickInterval.
func NewTickManager(interval time.Duration) *TickManager {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &TickManager{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// OnTick adds a hook executed at the start of every tick.
func (m *TickManager) OnTick(hook TickHook) {
	m.hooksMu.Lock()
	m.hooks = append(m.hooks, hook)
	m.hooksMu.Unlock()
}

// Register registers AI controller for actor
func (m *TickManager) Register(objectID uint32, controller Controller) {
	if _, loaded := m.controllers.Swap(objectID, controller); !loaded {
		m.controllerCount.Add(1) // Update cached count
	}
	controller.Start()

	slog.Debug("AI controller registered",
		"objectID", objectID,
		"intention", controller.CurrentIntention())
}

// Unregister unregisters AI controller
func (m *TickManager) Unregister(objectID uint32) {
	value, ok := m.controllers.LoadAndDelete(objectID)
	if !ok {
		return
	}

	m.controllerCount.Add(-1) // Update cached count

	controller := value.(Controller)
	controller.Stop()

	slog.Debug("AI controller unregistered", "objectID", objectID)
}

// Start starts AI tick loop (blocks until context is canceled)
func (m *TickManager) Start(ctx context.Context) error {
	m.ticker = time.NewTicker(m.interval)
	defer m.ticker.Stop()

	slog.Info("AI tick manager started", "interval", m.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("AI tick manager stopping", "ticks", m.tick.Load())
			return ctx.Err()

		case <-m.stopCh:
			slog.Info("AI tick manager stopped", "ticks", m.tick.Load())
			return nil

		case <-m.ticker.C:
			m.TickOnce()
		}
	}
}

// Stop stops AI tick loop
func (m *TickManager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// TickOnce runs hooks and ticks every registered controller exactly once.
// Start calls it from the ticker; tests and offline tools call it directly.
func (m *TickManager) TickOnce() {
	tick := m.tick.Add(1)

	m.hooksMu.Lock()
	hooks := m.hooks
	m.hooksMu.Unlock()
	for _, hook := range hooks {
		hook(tick)
	}

	m.tickAll()
}

// CurrentTick returns the number of completed ticks.
func (m *TickManager) CurrentTick() uint64 {
	return m.tick.Load()
}

// tickAll ticks all registered controllers
func (m *TickManager) tickAll() {
	count := 0

	m.controllers.Range(func(key, value any) bool {
		controller := value.(Controller)
		controller.Tick()
		count++

		if f, ok := controller.(Finisher); ok && f.Finished() {
			m.Unregister(key.(uint32))
		}
		return true
	})

	if count > 0 && IsDebugEnabled() {
		slog.Debug("AI tick completed", "controllers", count)
	}
}

// Count returns number of registered controllers (O(1) cached count)
func (m *TickManager) Count() int {
	return int(m.controllerCount.Load())
}

// GetController returns controller for actor
func (m *TickManager) GetController(objectID uint32) (Controller, error) {
	value, ok := m.controllers.Load(objectID)
	if !ok {
		return nil, fmt.Errorf("controller not found for objectID %d", objectID)
	}
	return value.(Controller), nil
}
