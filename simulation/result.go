package simulation

import "github.com/go-gl/mathgl/mgl32"

// SolveStats describes the work done by the collide-and-slide solver.
type SolveStats struct {
	// Casts is the number of shape casts issued.
	Casts int
	// Bounces is the number of surfaces the requested motion was redirected by.
	Bounces int
	// Stepped is true if the puppet climbed a step.
	Stepped bool
	// Capped is true if the recursion depth limit cut the motion short.
	Capped bool
}

// Add merges the stats of another solve into s.
func (s *SolveStats) Add(other SolveStats) {
	s.Casts += other.Casts
	s.Bounces += other.Bounces
	s.Stepped = s.Stepped || other.Stepped
	s.Capped = s.Capped || other.Capped
}

// Result captures the outcome of a single simulation tick for one puppet. The position is not
// committed to the puppet until Commit is called.
type Result struct {
	// Position is the position of the puppet after the tick.
	Position mgl32.Vec3
	// Displacement is the displacement resolved by the solver this tick.
	Displacement mgl32.Vec3
	// Velocity is the velocity of the puppet after the tick.
	Velocity mgl32.Vec3

	Grounded bool
	Stats    SolveStats
}
