package puppet

import "github.com/go-gl/mathgl/mgl32"

// State is the per-tick locomotion state of a puppet. It is owned exclusively by its puppet and is
// only ever mutated by that puppet's simulation. Nil timers are absent: the rule they implement is
// not currently applicable.
type State struct {
	// Grounded is recomputed at the start of every tick and must not be trusted before that.
	Grounded bool
	// Jumping is true while the jump input is held and not cancelled.
	Jumping bool

	// CoyoteTime counts the time spent airborne without jumping.
	CoyoteTime *Timer
	// JumpBuffer counts the time since a jump was requested that has not been honoured yet.
	JumpBuffer *Timer
	// AirJumpCount is the number of air jumps used since the puppet last left the ground.
	AirJumpCount *uint32

	HorizontalVelocity mgl32.Vec3
	VerticalVelocity   float32

	// GravityMultiplier is picked by the jump state machine for the next tick's gravity scale.
	GravityMultiplier float32
	// GravityScale is the scale applied on top of the profile's base gravity.
	GravityScale float32
}

func newState() State {
	return State{GravityMultiplier: 1, GravityScale: 1}
}

// AirJumps returns the number of air jumps used, or zero if none were used.
func (s *State) AirJumps() uint32 {
	if s.AirJumpCount == nil {
		return 0
	}
	return *s.AirJumpCount
}

// clone returns a copy of the state that shares no timers with s.
func (s State) clone() State {
	s.CoyoteTime = s.CoyoteTime.clone()
	s.JumpBuffer = s.JumpBuffer.clone()
	if s.AirJumpCount != nil {
		n := *s.AirJumpCount
		s.AirJumpCount = &n
	}
	return s
}
