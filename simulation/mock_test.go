package simulation

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/puppeteer/game"
	"github.com/oomph-ac/puppeteer/puppet"
)

// noneCaster never hits anything.
type noneCaster struct{}

func (noneCaster) Cast(game.Capsule, mgl32.Vec3, mgl32.Vec3, float32, Filter) (Hit, bool) {
	return Hit{}, false
}

// floorCaster is an infinite floor at y=0.
type floorCaster struct{}

func (floorCaster) Cast(c game.Capsule, origin, dir mgl32.Vec3, maxDistance float32, _ Filter) (Hit, bool) {
	if dir.Y() >= 0 {
		return Hit{}, false
	}
	gap := origin.Y() - c.Support(game.Up)
	if gap <= 0 {
		return Hit{Normal: game.Up}, true
	}
	if t := gap / -dir.Y(); t <= maxDistance {
		return Hit{Distance: t, Normal: game.Up}, true
	}
	return Hit{}, false
}

// scriptedCaster replays a fixed list of hits, then never hits again.
type scriptedCaster struct {
	hits  []Hit
	calls int
}

func (s *scriptedCaster) Cast(game.Capsule, mgl32.Vec3, mgl32.Vec3, float32, Filter) (Hit, bool) {
	s.calls++
	if len(s.hits) == 0 {
		return Hit{}, false
	}
	hit := s.hits[0]
	s.hits = s.hits[1:]
	return hit, true
}

// halfwayCaster always hits halfway through the cast.
type halfwayCaster struct {
	normal mgl32.Vec3
	calls  int
}

func (h *halfwayCaster) Cast(_ game.Capsule, _, _ mgl32.Vec3, maxDistance float32, _ Filter) (Hit, bool) {
	h.calls++
	return Hit{Distance: maxDistance / 2, Normal: h.normal}, true
}

func newTestPuppet(t *testing.T, pos mgl32.Vec3, opts ...puppet.Option) *puppet.Puppet {
	t.Helper()
	p, err := puppet.New(1, game.DefaultCapsule(), pos, opts...)
	if err != nil {
		t.Fatalf("failed to create puppet: %v", err)
	}
	return p
}

// standingHeight is the height of the centre of a default capsule resting one skin above y=0.
func standingHeight() float32 {
	return game.DefaultCapsule().Support(game.Up) + game.DefaultSkinThickness
}

func approxEq(a, b, eps float32) bool {
	d := a - b
	return d <= eps && d >= -eps
}
