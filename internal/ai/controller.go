package ai

import "github.com/udisondev/herobrine/internal/model"

// Controller represents AI controller interface for actors
type Controller interface {
	// Start starts AI controller
	Start()

	// Stop stops AI controller
	Stop()

	// SetIntention sets AI intention
	SetIntention(intention model.Intention)

	// CurrentIntention returns current AI intention
	CurrentIntention() model.Intention

	// Tick performs AI tick (called once per simulation tick)
	Tick()
}

// Finisher is implemented by controllers whose actor can leave the world on its own.
// TickManager unregisters a controller once Finished reports true.
type Finisher interface {
	Finished() bool
}
