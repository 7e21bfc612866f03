package simulation

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/puppeteer/game"
	"github.com/oomph-ac/puppeteer/puppet"
)

var ctxPool = sync.Pool{
	New: func() any {
		return &slideContext{}
	},
}

func newCtx(s *Simulator, p *puppet.Puppet, grounded, gravityPass bool, vel mgl32.Vec3) *slideContext {
	ctx := ctxPool.Get().(*slideContext)
	ctx.sim = s
	ctx.collider = p.Collider()
	ctx.params = p.Params()
	ctx.filter = ExcludeSelf(p)
	ctx.grounded = grounded
	ctx.gravityPass = gravityPass
	ctx.direction = game.NormalizeOrZero(vel)
	return ctx
}

func putCtx(ctx *slideContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *slideContext) reset() {
	ctx.sim = nil
	ctx.collider = game.Capsule{}
	ctx.params = puppet.Params{}
	ctx.filter = Filter{}
	ctx.grounded = false
	ctx.gravityPass = false
	ctx.direction = mgl32.Vec3{}
	ctx.stats = SolveStats{}
}
