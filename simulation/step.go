package simulation

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/puppeteer/game"
)

// tryStep attempts to climb the obstacle with the given normal that blocked vel at pos. It casts up
// for headroom, forward over the obstacle and then down onto it. The displacement returned is
// terminal for the pass.
func (ctx *slideContext) tryStep(pos, vel, normal mgl32.Vec3) (mgl32.Vec3, bool) {
	skin := ctx.params.SkinThickness
	height := ctx.params.StepHeight
	if hit, ok := ctx.cast(pos, game.Up, height+skin); ok {
		height = math32.Max(hit.Distance-skin, 0)
	}
	if height <= skin {
		ctx.sim.debugf(StageMove, "step rejected: ceiling too low (height=%v)", height)
		return mgl32.Vec3{}, false
	}

	stepVel := vel.Add(game.NormalizeOrZero(game.Horizontal(normal)).Mul(-ctx.params.StepMoveDistance))
	elevated := pos.Add(game.Up.Mul(height))
	if dir := game.NormalizeOrZero(stepVel); dir != (mgl32.Vec3{}) {
		if hit, ok := ctx.cast(elevated, dir, stepVel.Len()+skin); ok {
			stepVel = game.NormalizeOrZero(vel).Mul(hit.Distance - skin)
		}
	}
	if stepVel.Len() <= skin {
		ctx.sim.debugf(StageMove, "step rejected: no room to move forward")
		return mgl32.Vec3{}, false
	}

	hit, ok := ctx.cast(elevated.Add(stepVel), game.Up.Mul(-1), height+skin)
	if !ok {
		ctx.sim.debugf(StageMove, "step rejected: nothing to land on")
		return mgl32.Vec3{}, false
	}
	if !game.Walkable(hit.Normal, ctx.params.MaxSlopeAngle) {
		ctx.sim.debugf(StageMove, "step rejected: landing too steep (normal=%v)", hit.Normal)
		return mgl32.Vec3{}, false
	}
	height -= hit.Distance - skin

	ctx.stats.Stepped = true
	ctx.sim.debugf(StageMove, "stepped up by %v", height)
	return mgl32.Vec3{stepVel.X(), 0, stepVel.Z()}.Add(game.Up.Mul(height)), true
}
