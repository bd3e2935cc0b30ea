package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastTimers_NormalizeOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		value int32
		want  int32
		fired bool
	}{
		{"negative", -5, IllusionCeiling - 1, false},
		{"zero", 0, IllusionCeiling - 1, false},
		{"above ceiling", IllusionCeiling + 1, IllusionCeiling - 1, false},
		{"far above ceiling", 1 << 30, IllusionCeiling - 1, false},
		{"at ceiling", IllusionCeiling, IllusionCeiling - 1, false},
		{"one", 1, 0, true},
		{"mid", 17, 16, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timers := NewCastTimers()
			timers.Illusion = tt.value

			fired := timers.Advance()

			assert.Equal(t, tt.want, timers.Illusion)
			assert.Equal(t, tt.fired, fired.Has(AbilityIllusion))
		})
	}
}

func TestCastTimers_NormalizeEachField(t *testing.T) {
	timers := CastTimers{Illusion: -1, Debuff: 999, Teleport: 0}

	assert.Zero(t, timers.Advance())
	assert.Equal(t, CastTimers{
		Illusion: IllusionCeiling - 1,
		Debuff:   DebuffCeiling - 1,
		Teleport: TeleportCeiling - 1,
	}, timers)
}

func TestCastTimers_Period(t *testing.T) {
	timers := NewCastTimers()
	fires := map[Ability][]int{}

	for tick := 1; tick <= 2000; tick++ {
		fired := timers.Advance()
		for _, a := range []Ability{AbilityIllusion, AbilityDebuff, AbilityTeleport} {
			if fired.Has(a) {
				fires[a] = append(fires[a], tick)
			}
		}
	}

	assert.Equal(t, []int{400, 800, 1200, 1600, 2000}, fires[AbilityIllusion])
	assert.Equal(t, []int{250, 500, 750, 1000, 1250, 1500, 1750, 2000}, fires[AbilityDebuff])
	assert.Equal(t, []int{500, 1000, 1500, 2000}, fires[AbilityTeleport])
}

func TestCastTimers_ZeroOnceThenReset(t *testing.T) {
	timers := NewCastTimers()
	zeros := 0
	for range IllusionCeiling {
		timers.Advance()
		if timers.Illusion == 0 {
			zeros++
		}
	}
	assert.Equal(t, 1, zeros)
	assert.Zero(t, timers.Illusion)

	timers.Advance()
	assert.Equal(t, IllusionCeiling-1, timers.Illusion)
}

func TestAbility_String(t *testing.T) {
	assert.Equal(t, "none", Ability(0).String())
	assert.Equal(t, "illusion", AbilityIllusion.String())
	assert.Equal(t, "illusion|teleport", (AbilityIllusion | AbilityTeleport).String())
	assert.Equal(t, "illusion|debuff|teleport", (AbilityIllusion | AbilityDebuff | AbilityTeleport).String())
}
