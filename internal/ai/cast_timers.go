package ai

// Reset ceilings of the three cast timers, in ticks.
const (
	IllusionCeiling int32 = 400
	DebuffCeiling   int32 = 250
	TeleportCeiling int32 = 500
)

// Ability is a bit set of abilities whose timer reached zero on a tick.
type Ability uint8

const (
	AbilityIllusion Ability = 1 << iota
	AbilityDebuff
	AbilityTeleport
)

// Has reports whether a is in the set.
func (s Ability) Has(a Ability) bool {
	return s&a != 0
}

func (s Ability) String() string {
	if s == 0 {
		return "none"
	}
	out := ""
	for _, n := range []struct {
		a    Ability
		name string
	}{{AbilityIllusion, "illusion"}, {AbilityDebuff, "debuff"}, {AbilityTeleport, "teleport"}} {
		if s.Has(n.a) {
			if out != "" {
				out += "|"
			}
			out += n.name
		}
	}
	return out
}

// CastTimers holds the three countdowns of one caster. Persisted as three
// integers; any value outside [1, ceiling] heals to the ceiling on the next Advance.
type CastTimers struct {
	Illusion int32
	Debuff   int32
	Teleport int32
}

// NewCastTimers returns timers at their ceilings.
func NewCastTimers() CastTimers {
	return CastTimers{
		Illusion: IllusionCeiling,
		Debuff:   DebuffCeiling,
		Teleport: TeleportCeiling,
	}
}

// Advance normalizes, decrements and reports which timers hit zero.
// All three may fire on the same tick.
func (t *CastTimers) Advance() Ability {
	var fired Ability
	if countdown(&t.Illusion, IllusionCeiling) {
		fired |= AbilityIllusion
	}
	if countdown(&t.Debuff, DebuffCeiling) {
		fired |= AbilityDebuff
	}
	if countdown(&t.Teleport, TeleportCeiling) {
		fired |= AbilityTeleport
	}
	return fired
}

func countdown(field *int32, ceiling int32) bool {
	if *field <= 0 || *field > ceiling {
		*field = ceiling
	}
	*field--
	return *field == 0
}
