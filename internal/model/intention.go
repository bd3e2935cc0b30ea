package model

// Intention represents AI state for actors
type Intention int32

const (
	// IntentionIdle - actor is standing idle, no active behavior
	IntentionIdle Intention = iota
	// IntentionActive - actor is wandering or looking around
	IntentionActive
	// IntentionAttack - actor is engaged with a target (aggressive posture)
	IntentionAttack
)

// String returns human-readable intention name
func (i Intention) String() string {
	switch i {
	case IntentionIdle:
		return "IDLE"
	case IntentionActive:
		return "ACTIVE"
	case IntentionAttack:
		return "ATTACK"
	default:
		return "UNKNOWN"
	}
}
