package simulation

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/puppeteer/puppet"
)

// jump runs the jump state machine of the puppet.
func (s *Simulator) jump(p *puppet.Puppet) {
	state := p.State()
	in := p.Input()

	if in.JumpStopRequested() {
		state.Jumping = false
		in.ClearJumpStop()
	}
	if in.JumpStartRequested() {
		state.Jumping = true
		if s.grantJump(p) {
			s.applyJumpImpulse(p)
		}
	}
	s.updateGravityMultiplier(p)
}

// grantJump decides if the pending jump of the puppet may be taken this tick.
func (s *Simulator) grantJump(p *puppet.Puppet) bool {
	state := p.State()
	profile := p.Profile()

	switch {
	case state.Grounded || (state.CoyoteTime != nil && !state.CoyoteTime.Finished()):
		state.JumpBuffer = puppet.NewTimer(profile.JumpBuffer)
		state.AirJumpCount = nil
		s.debugf(StageCompute, "puppet %d jump granted", p.ID())
	case profile.MaxAirJumps > 0 && state.AirJumps() < profile.MaxAirJumps:
		n := state.AirJumps() + 1
		state.AirJumpCount = &n
		s.debugf(StageCompute, "puppet %d air jump %d/%d granted", p.ID(), n, profile.MaxAirJumps)
	default:
		if state.JumpBuffer == nil {
			state.JumpBuffer = puppet.NewTimer(profile.JumpBuffer)
		}
		return false
	}
	return true
}

func (s *Simulator) applyJumpImpulse(p *puppet.Puppet) {
	state := p.State()
	profile := p.Profile()

	p.Input().ClearJumpStart()
	// A jump always ends coyote time.
	state.CoyoteTime = &puppet.Timer{Duration: profile.CoyoteTime, Elapsed: profile.CoyoteTime}

	speed := math32.Sqrt(2 * profile.Gravity * state.GravityScale * profile.JumpHeight)
	if state.VerticalVelocity > 0 {
		speed = math32.Max(speed-state.VerticalVelocity, 0)
	} else if state.VerticalVelocity < 0 {
		speed += math32.Abs(state.VerticalVelocity)
	}
	state.VerticalVelocity += speed
}

func (s *Simulator) updateGravityMultiplier(p *puppet.Puppet) {
	state := p.State()
	profile := p.Profile()
	eps := s.Options.VerticalEpsilon

	switch vy := state.VerticalVelocity; {
	case vy > eps && state.Jumping:
		state.GravityMultiplier = 1
	case vy > eps:
		state.GravityMultiplier = profile.JumpCutoff
	case vy < -eps:
		state.GravityMultiplier = profile.DownwardMovementMultiplier
	default:
		state.GravityMultiplier = 1
	}
}
