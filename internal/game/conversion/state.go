package conversion

import "github.com/google/uuid"

// State is the conversion state of one mooshroom: the variant and the token of
// the last strike that flipped it.
type State struct {
	Variant    Variant
	lastStrike uuid.UUID
	struck     bool
}

// NewState returns a state with no recorded strike.
func NewState(v Variant) State {
	return State{Variant: v}
}

// Strike flips the variant unless token is the last one seen.
// Reports whether a flip happened.
func (s *State) Strike(token uuid.UUID) bool {
	if s.struck && token == s.lastStrike {
		return false
	}
	s.lastStrike = token
	s.struck = true
	s.Variant = s.Variant.Flip()
	return true
}

// LastStrike returns the last recorded strike token. ok is false before the first strike.
func (s *State) LastStrike() (token uuid.UUID, ok bool) {
	return s.lastStrike, s.struck
}
