package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/puppeteer/game"
	"github.com/oomph-ac/puppeteer/puppet"
)

// ColliderID identifies a collider registered in a world.
type ColliderID uint64

// ColliderKind is the shape of a collider.
type ColliderKind uint8

const (
	// ColliderBox is a static axis aligned box.
	ColliderBox ColliderKind = iota
	// ColliderPlane is a static half-space. Everything below the plane is solid.
	ColliderPlane
	// ColliderActor is the capsule of a puppet.
	ColliderActor
)

func (k ColliderKind) String() string {
	switch k {
	case ColliderBox:
		return "box"
	case ColliderPlane:
		return "plane"
	case ColliderActor:
		return "actor"
	}
	return "unknown"
}

type collider struct {
	kind ColliderKind

	box cube.BBox

	normal mgl32.Vec3
	offset float32

	actor   puppet.ID
	capsule game.Capsule
	pos     mgl32.Vec3
}

// bounds returns the box swept against for box and actor colliders.
func (c *collider) bounds() cube.BBox {
	if c.kind == ColliderActor {
		return c.capsule.BBox(c.pos)
	}
	return c.box
}
