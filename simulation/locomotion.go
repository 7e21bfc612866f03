package simulation

import (
	"github.com/oomph-ac/puppeteer/game"
	"github.com/oomph-ac/puppeteer/puppet"
)

// integrate moves the horizontal velocity of the puppet towards the velocity its input asks for,
// and applies gravity while airborne. A grounded puppet never keeps a downward velocity. The move
// direction is consumed.
func (s *Simulator) integrate(p *puppet.Puppet, dt float32) {
	profile := p.Profile()
	state := p.State()
	in := p.Input()

	accel, decel, turn := profile.Acceleration, profile.Deceleration, profile.TurnSpeed
	if !state.Grounded {
		accel, decel, turn = profile.AirAcceleration, profile.AirDeceleration, profile.AirTurnSpeed
	}

	dir := in.MoveDirection()
	desired := dir.Mul(profile.MaxSpeed * in.SpeedMultiplier())
	vel := state.HorizontalVelocity

	var rate float32
	switch {
	case dir.Len() <= game.InputDeadzone:
		rate = decel
	case vel.Len() < game.VelocityDeadzone:
		rate = accel
	default:
		dot := game.NormalizeOrZero(dir).Dot(game.NormalizeOrZero(vel))
		rate = game.Lerp(accel, turn, (1-dot)*0.5)
	}
	state.HorizontalVelocity = game.Horizontal(game.MoveTowards(vel, desired, rate*dt))

	if !state.Grounded {
		state.VerticalVelocity -= profile.Gravity * state.GravityScale * dt
	} else if state.VerticalVelocity < 0 {
		// Landed: the fall ends here and does not carry into the next jump or ledge drop.
		state.VerticalVelocity = 0
		state.GravityMultiplier = 1
	}
	in.ClearMoveDirection()
}
