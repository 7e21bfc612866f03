package simulation

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/puppeteer/game"
	"github.com/oomph-ac/puppeteer/puppet"
)

// Caster bridges the physical world for shape casts. Implementations must return the nearest hit
// along the sweep, and must be safe for concurrent use by multiple readers.
type Caster interface {
	// Cast sweeps the collider from origin along the unit direction for at most maxDistance and
	// returns the nearest hit. A distance of zero means the collider already touches or overlaps
	// something at origin.
	Cast(collider game.Capsule, origin, direction mgl32.Vec3, maxDistance float32, filter Filter) (Hit, bool)
}

// Hit is the result of a successful shape cast.
type Hit struct {
	Distance float32
	Normal   mgl32.Vec3
}

// Filter excludes puppets from a shape cast.
type Filter struct {
	Exclude []puppet.ID
}

// ExcludeSelf returns a filter that excludes only the puppet passed.
func ExcludeSelf(p *puppet.Puppet) Filter {
	return Filter{Exclude: []puppet.ID{p.ID()}}
}

// Excludes returns true if the puppet with the ID passed must be ignored.
func (f Filter) Excludes(id puppet.ID) bool {
	for _, ex := range f.Exclude {
		if ex == id {
			return true
		}
	}
	return false
}
