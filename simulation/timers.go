package simulation

import (
	"time"

	"github.com/oomph-ac/puppeteer/puppet"
)

// updateCoyoteTime runs the coyote timer while the puppet is airborne without having jumped. Landing
// clears the coyote timer and the air jumps used.
func (s *Simulator) updateCoyoteTime(p *puppet.Puppet, delta time.Duration) {
	state := p.State()
	if state.Grounded {
		state.CoyoteTime = nil
		state.AirJumpCount = nil
		return
	}
	if state.Jumping {
		return
	}
	if state.CoyoteTime == nil {
		state.CoyoteTime = puppet.NewTimer(p.Profile().CoyoteTime)
		return
	}
	state.CoyoteTime.Tick(delta)
}

// updateJumpBuffer runs the jump buffer, dropping the pending jump once the buffer expires or the
// request was already consumed.
func (s *Simulator) updateJumpBuffer(p *puppet.Puppet, delta time.Duration) {
	state := p.State()
	if state.JumpBuffer == nil {
		return
	}
	in := p.Input()

	state.JumpBuffer.Tick(delta)
	if state.JumpBuffer.Finished() || !in.JumpStartRequested() {
		in.ClearJumpStart()
		state.JumpBuffer = nil
	}
}
