package model

// Rand is the random source consumed by gates and state machines.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float32() float32
}
