package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/herobrine/internal/model"
	"github.com/udisondev/herobrine/internal/testutil"
)

// countingController records calls for TickManager tests.
type countingController struct {
	intention model.Intention
	started   bool
	stopped   bool
	ticks     int
	finishAt  int
}

func (c *countingController) Start()                            { c.started = true }
func (c *countingController) Stop()                             { c.stopped = true }
func (c *countingController) SetIntention(i model.Intention)    { c.intention = i }
func (c *countingController) CurrentIntention() model.Intention { return c.intention }
func (c *countingController) Tick()                             { c.ticks++ }
func (c *countingController) Finished() bool                    { return c.finishAt > 0 && c.ticks >= c.finishAt }

func TestTickManager_RegisterUnregister(t *testing.T) {
	mgr := NewTickManager(0)
	ctrl := &countingController{}

	mgr.Register(1, ctrl)
	assert.True(t, ctrl.started)
	assert.Equal(t, 1, mgr.Count())

	got, err := mgr.GetController(1)
	require.NoError(t, err)
	assert.Same(t, ctrl, got)

	mgr.Unregister(1)
	assert.True(t, ctrl.stopped)
	assert.Equal(t, 0, mgr.Count())

	_, err = mgr.GetController(1)
	assert.Error(t, err)

	// unknown id is a no-op
	mgr.Unregister(42)
	assert.Equal(t, 0, mgr.Count())
}

func TestTickManager_RegisterReplaces(t *testing.T) {
	mgr := NewTickManager(0)
	mgr.Register(1, &countingController{})
	mgr.Register(1, &countingController{})

	assert.Equal(t, 1, mgr.Count())
}

func TestTickManager_TickOnce(t *testing.T) {
	mgr := NewTickManager(0)
	var hookTicks []uint64
	mgr.OnTick(func(tick uint64) { hookTicks = append(hookTicks, tick) })

	ctrls := make([]*countingController, 10)
	for i := range ctrls {
		ctrls[i] = &countingController{}
		mgr.Register(uint32(i+1), ctrls[i])
	}

	mgr.TickOnce()
	mgr.TickOnce()

	assert.Equal(t, []uint64{1, 2}, hookTicks)
	assert.Equal(t, uint64(2), mgr.CurrentTick())
	for _, c := range ctrls {
		assert.Equal(t, 2, c.ticks)
	}
}

func TestTickManager_UnregistersFinished(t *testing.T) {
	mgr := NewTickManager(0)
	ctrl := &countingController{finishAt: 2}
	mgr.Register(7, ctrl)

	mgr.TickOnce()
	assert.Equal(t, 1, mgr.Count())

	mgr.TickOnce()
	assert.Equal(t, 0, mgr.Count())
	assert.True(t, ctrl.stopped)

	mgr.TickOnce()
	assert.Equal(t, 2, ctrl.ticks)
}

func TestTickManager_Start(t *testing.T) {
	mgr := NewTickManager(5 * time.Millisecond)
	ticked := make(chan struct{}, 1)
	mgr.OnTick(func(uint64) {
		select {
		case ticked <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(testutil.ContextWithTimeout(t, 2*time.Second))
	done := make(chan error, 1)
	go func() { done <- mgr.Start(ctx) }()

	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("no tick within 1s")
	}
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Start() did not stop after context cancel")
	}
}

func TestTickManager_Stop(t *testing.T) {
	mgr := NewTickManager(time.Hour)
	done := make(chan error, 1)
	go func() { done <- mgr.Start(context.Background()) }()

	mgr.Stop()
	mgr.Stop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Start() did not return after Stop")
	}
}
