package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Capsule is a vertical capsule collider centred on its owner's position. Length is the length of
// the inner segment, so the total height is Length + 2*Radius.
type Capsule struct {
	Radius float32
	Length float32
}

// DefaultCapsule returns the capsule used when no collider is specified.
func DefaultCapsule() Capsule {
	return Capsule{Radius: DefaultCapsuleRadius, Length: DefaultCapsuleLength}
}

// Height returns the total height of the capsule.
func (c Capsule) Height() float32 {
	return c.Length + c.Radius*2
}

// HalfExtents returns the half extents of the bounding box enclosing the capsule.
func (c Capsule) HalfExtents() mgl32.Vec3 {
	return mgl32.Vec3{c.Radius, c.Length*0.5 + c.Radius, c.Radius}
}

// Support returns the distance from the capsule centre to its furthest point along the unit
// direction n.
func (c Capsule) Support(n mgl32.Vec3) float32 {
	return c.Radius + c.Length*0.5*math32.Abs(n.Y())
}

// Valid returns true if the capsule has a positive radius and a non-negative segment length.
func (c Capsule) Valid() bool {
	return c.Radius > 0 && c.Length >= 0
}

// BBox returns the bounding box of the capsule centred on pos.
func (c Capsule) BBox(pos mgl32.Vec3) cube.BBox {
	return AABBFromHalfExtents(c.HalfExtents()).Translate(pos)
}

// AABBFromHalfExtents returns a bounding box centred on the origin from the given half extents.
func AABBFromHalfExtents(h mgl32.Vec3) cube.BBox {
	return cube.Box(
		-h.X(), -h.Y(), -h.Z(),
		h.X(), h.Y(), h.Z(),
	)
}

// AABBVectorDistance calculates the distance between an AABB and a vector.
func AABBVectorDistance(a cube.BBox, v mgl32.Vec3) float32 {
	x := math32.Max(a.Min().X()-v.X(), math32.Max(0, v.X()-a.Max().X()))
	y := math32.Max(a.Min().Y()-v.Y(), math32.Max(0, v.Y()-a.Max().Y()))
	z := math32.Max(a.Min().Z()-v.Z(), math32.Max(0, v.Z()-a.Max().Z()))

	return math32.Sqrt(x*x + y*y + z*z)
}
