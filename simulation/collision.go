package simulation

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/puppeteer/game"
	"github.com/oomph-ac/puppeteer/puppet"
)

// CollideAndSlide resolves the displacement vel requested from pos against the world and returns
// the displacement the puppet can actually travel. The horizontal pass may climb steps while the
// puppet is grounded. The gravity pass stops on walkable surfaces instead of sliding down them.
func (s *Simulator) CollideAndSlide(p *puppet.Puppet, pos, vel mgl32.Vec3, grounded, gravityPass bool) (mgl32.Vec3, SolveStats) {
	ctx := newCtx(s, p, grounded, gravityPass, vel)
	defer putCtx(ctx)

	out := ctx.collideAndSlide(pos, vel, 0)
	return out, ctx.stats
}

func (ctx *slideContext) collideAndSlide(pos, vel mgl32.Vec3, depth int) mgl32.Vec3 {
	dir := game.NormalizeOrZero(vel)
	if dir == (mgl32.Vec3{}) {
		return mgl32.Vec3{}
	}
	if depth >= ctx.sim.Options.MaxBounces {
		ctx.stats.Capped = true
		ctx.sim.debugf(StageMove, "bounce limit reached (depth=%d remaining=%v)", depth, vel)
		return mgl32.Vec3{}
	}

	skin := ctx.params.SkinThickness
	length := vel.Len()
	hit, ok := ctx.cast(pos, dir, length+skin)
	if !ok {
		return vel
	}
	ctx.stats.Bounces++

	safe := hit.Distance - skin
	if safe <= skin {
		safe = 0
	}
	effective := dir.Mul(safe)
	remaining := vel.Sub(effective)
	normal := game.NormalizeOrZero(hit.Normal)
	ctx.sim.debugf(StageMove, "hit at depth=%d dist=%v normal=%v effective=%v", depth, hit.Distance, normal, effective)

	if game.Walkable(normal, ctx.params.MaxSlopeAngle) {
		if ctx.gravityPass {
			return effective
		}
		remaining = game.ProjectAndScale(remaining, normal)
	} else {
		scale := 1 - game.NormalizeOrZero(game.Horizontal(normal)).Dot(game.NormalizeOrZero(game.Horizontal(ctx.direction)).Mul(-1))
		if ctx.grounded && !ctx.gravityPass {
			if step, ok := ctx.tryStep(pos, vel, normal); ok {
				return step
			}
			remaining = game.ProjectAndScale(game.Horizontal(remaining), game.Horizontal(normal)).Mul(scale)
		} else {
			remaining = game.ProjectAndScale(remaining, normal).Mul(scale)
		}
	}
	return effective.Add(ctx.collideAndSlide(pos.Add(effective), remaining, depth+1))
}
