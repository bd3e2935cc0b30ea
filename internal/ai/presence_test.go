package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/herobrine/internal/model"
	"github.com/udisondev/herobrine/internal/testutil"
	"github.com/udisondev/herobrine/internal/world"
)

func TestPresenceAI(t *testing.T) {
	tests := []struct {
		name        string
		bossFlag    bool
		alwaysSpawn bool
		observer    bool
		wantRemoved bool
	}{
		{"flag off", false, false, false, true},
		{"flag on", true, false, false, false},
		{"override on", false, true, false, false},
		{"observer view never removes", false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []world.Option
			if tt.observer {
				opts = append(opts, world.AsObserverView())
			}
			w := testutil.FlatWorld(t, opts...)
			w.SetWorldBossEnabled(tt.bossFlag)

			warrior := model.NewActor(0, model.KindHerobrineWarrior, model.NewLocation(3, 64, 3, 0))
			_, err := w.AddActor(warrior)
			require.NoError(t, err)
			warrior.Effects().Add(model.StatusEffect{Type: model.EffectPoison, RemainingTicks: 100})

			ai := NewPresenceAI(warrior, w, tt.alwaysSpawn)
			ai.Start()
			ai.Tick()

			assert.Equal(t, tt.wantRemoved, warrior.IsRemoved())
			assert.Equal(t, tt.wantRemoved, ai.Finished())
			_, inWorld := w.Actor(warrior.ID())
			assert.Equal(t, !tt.wantRemoved, inWorld)
			if !tt.wantRemoved {
				assert.Zero(t, warrior.Effects().Len(), "effects cleared")
			}
		})
	}
}

func TestPresenceAI_FinishedWhenRemovedElsewhere(t *testing.T) {
	w := testutil.FlatWorld(t)
	w.SetWorldBossEnabled(true)

	decoy := model.NewActor(0, model.KindFakeHerobrineMage, model.NewLocation(1, 64, 1, 0))
	_, err := w.AddActor(decoy)
	require.NoError(t, err)

	ai := NewPresenceAI(decoy, w, false)
	ai.Start()
	ai.Tick()
	assert.False(t, ai.Finished())

	w.RemoveActor(decoy.ID())
	ai.Tick()
	assert.True(t, ai.Finished())
}
