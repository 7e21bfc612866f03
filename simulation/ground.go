package simulation

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/puppeteer/game"
	"github.com/oomph-ac/puppeteer/puppet"
)

// detectGround checks if the puppet is standing on something at pos, and returns the position it
// should start the tick from. A puppet touching the surface below is nudged up by its skin.
func (s *Simulator) detectGround(p *puppet.Puppet, pos mgl32.Vec3) (mgl32.Vec3, bool) {
	skin := p.Params().SkinThickness
	hit, ok := s.Caster.Cast(p.Collider(), pos, game.Up.Mul(-1), skin*2, ExcludeSelf(p))
	if !ok {
		return pos, false
	}
	if hit.Distance == 0 {
		pos = pos.Add(game.Up.Mul(skin))
		s.debugf(StagePrepare, "puppet %d nudged out of the ground", p.ID())
	}
	return pos, true
}
