package simulation

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/puppeteer/game"
	"github.com/oomph-ac/puppeteer/puppet"
)

// slideContext holds everything a single collide-and-slide pass needs across its recursion.
type slideContext struct {
	sim *Simulator

	collider game.Capsule
	params   puppet.Params
	filter   Filter

	grounded    bool
	gravityPass bool
	// direction is the direction of the motion requested at the top of the recursion, used to
	// scale slides along walls.
	direction mgl32.Vec3

	stats SolveStats
}

func (ctx *slideContext) cast(origin, dir mgl32.Vec3, maxDistance float32) (Hit, bool) {
	ctx.stats.Casts++
	return ctx.sim.Caster.Cast(ctx.collider, origin, dir, maxDistance, ctx.filter)
}
