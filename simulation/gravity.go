package simulation

import "github.com/oomph-ac/puppeteer/puppet"

// scaleGravity derives the gravity scale of the puppet from its jump height and time to apex, so
// that a jump reaches exactly the configured height.
func (s *Simulator) scaleGravity(p *puppet.Puppet) {
	profile := p.Profile()
	state := p.State()

	newGravity := -2 * profile.JumpHeight / (profile.TimeToJumpApex * profile.TimeToJumpApex)
	state.GravityScale = newGravity / -profile.Gravity * state.GravityMultiplier
}
