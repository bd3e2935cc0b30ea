package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusEffects_Stacking(t *testing.T) {
	tests := []struct {
		name      string
		existing  StatusEffect
		incoming  StatusEffect
		wantAdded bool
		want      StatusEffect
	}{
		{
			name:      "higher amplifier replaces",
			existing:  StatusEffect{Type: EffectSlowness, Amplifier: 0, RemainingTicks: 100},
			incoming:  StatusEffect{Type: EffectSlowness, Amplifier: 1, RemainingTicks: 50},
			wantAdded: true,
			want:      StatusEffect{Type: EffectSlowness, Amplifier: 1, RemainingTicks: 50},
		},
		{
			name:      "same amplifier keeps longer duration",
			existing:  StatusEffect{Type: EffectWeakness, Amplifier: 0, RemainingTicks: 100},
			incoming:  StatusEffect{Type: EffectWeakness, Amplifier: 0, RemainingTicks: 400},
			wantAdded: true,
			want:      StatusEffect{Type: EffectWeakness, Amplifier: 0, RemainingTicks: 400},
		},
		{
			name:      "same amplifier shorter duration is a refresh no-op",
			existing:  StatusEffect{Type: EffectWeakness, Amplifier: 0, RemainingTicks: 400},
			incoming:  StatusEffect{Type: EffectWeakness, Amplifier: 0, RemainingTicks: 10},
			wantAdded: true,
			want:      StatusEffect{Type: EffectWeakness, Amplifier: 0, RemainingTicks: 400},
		},
		{
			name:      "lower amplifier rejected",
			existing:  StatusEffect{Type: EffectSlowness, Amplifier: 2, RemainingTicks: 100},
			incoming:  StatusEffect{Type: EffectSlowness, Amplifier: 1, RemainingTicks: 400},
			wantAdded: false,
			want:      StatusEffect{Type: EffectSlowness, Amplifier: 2, RemainingTicks: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewStatusEffects()
			require.True(t, m.Add(tt.existing))

			assert.Equal(t, tt.wantAdded, m.Add(tt.incoming))

			got, ok := m.Get(tt.existing.Type)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, m.Len())
		})
	}
}

func TestStatusEffects_TickExpires(t *testing.T) {
	m := NewStatusEffects()
	m.Add(StatusEffect{Type: EffectSlowness, Amplifier: 1, RemainingTicks: 2})
	m.Add(StatusEffect{Type: EffectWeakness, RemainingTicks: 3})

	m.Tick()
	assert.Equal(t, 2, m.Len())

	m.Tick()
	_, ok := m.Get(EffectSlowness)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())

	m.Tick()
	assert.Equal(t, 0, m.Len())
}

func TestStatusEffects_Clear(t *testing.T) {
	m := NewStatusEffects()
	assert.False(t, m.Add(StatusEffect{Type: EffectPoison, RemainingTicks: 0}))

	m.Add(StatusEffect{Type: EffectPoison, RemainingTicks: 10})
	m.Add(StatusEffect{Type: EffectRegeneration, RemainingTicks: 10})

	assert.Equal(t, 2, m.Clear())
	assert.Empty(t, m.All())
}
