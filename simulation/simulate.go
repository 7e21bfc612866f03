package simulation

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/puppeteer/puppet"
)

// Tick runs one tick of the movement pipeline for the puppet: grounding, locomotion, gravity
// scaling, jump timers, the jump state machine and finally collision resolution. The locomotion
// state of the puppet is updated in place, but its position is only changed by Commit.
func (s *Simulator) Tick(p *puppet.Puppet, delta time.Duration) Result {
	dt := float32(delta.Seconds())
	state := p.State()
	s.debugf(StagePrepare, "START tick for puppet %d (pos=%v vel=%v dt=%v)", p.ID(), p.Position(), p.Velocity(), delta)

	pos, grounded := s.detectGround(p, p.Position())
	state.Grounded = grounded

	s.integrate(p, dt)
	s.scaleGravity(p)
	s.updateCoyoteTime(p, delta)
	s.updateJumpBuffer(p, delta)
	s.jump(p)
	s.debugf(StageCompute, "grounded=%v hVel=%v vVel=%v gravityScale=%v", grounded, state.HorizontalVelocity, state.VerticalVelocity, state.GravityScale)

	disp, stats := s.move(p, pos, grounded, dt)
	res := Result{
		Position:     pos.Add(disp),
		Displacement: disp,
		Velocity:     p.Velocity(),
		Grounded:     grounded,
		Stats:        stats,
	}
	s.debugf(StageMove, "END tick for puppet %d (pos=%v disp=%v casts=%d)", p.ID(), res.Position, disp, stats.Casts)
	return res
}

// Step runs a tick for the puppet and commits its result immediately.
func (s *Simulator) Step(p *puppet.Puppet, delta time.Duration) Result {
	res := s.Tick(p, delta)
	Commit(p, res)
	return res
}

// Commit applies the position of a tick result to the puppet.
func Commit(p *puppet.Puppet, res Result) {
	p.SetPosition(res.Position)
}

// move resolves the horizontal displacement of the tick first and then the vertical one, starting
// from where the horizontal pass ended.
func (s *Simulator) move(p *puppet.Puppet, pos mgl32.Vec3, grounded bool, dt float32) (mgl32.Vec3, SolveStats) {
	state := p.State()

	horizontal := state.HorizontalVelocity.Mul(dt)
	horizontal[1] = 0
	h, stats := s.CollideAndSlide(p, pos, horizontal, grounded, false)

	vertical := mgl32.Vec3{0, state.VerticalVelocity * dt, 0}
	v, vStats := s.CollideAndSlide(p, pos.Add(h), vertical, grounded, true)
	stats.Add(vStats)

	return h.Add(v), stats
}
