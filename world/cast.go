package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/puppeteer/game"
	"github.com/oomph-ac/puppeteer/simulation"
)

// Cast sweeps the capsule from origin along direction for at most maxDistance and returns the
// nearest hit. Boxes and other actors are swept using the bounding box of the capsule, planes
// using the exact capsule. When two colliders are hit at the same distance, the one added first
// wins.
func (w *World) Cast(capsule game.Capsule, origin, direction mgl32.Vec3, maxDistance float32, filter simulation.Filter) (simulation.Hit, bool) {
	dir := game.NormalizeOrZero(direction)
	if dir == (mgl32.Vec3{}) || maxDistance < 0 {
		return simulation.Hit{}, false
	}

	half := capsule.HalfExtents()
	reach := capsule.BBox(origin).Extend(dir.Mul(maxDistance)).Grow(1e-3)

	w.RLock()
	defer w.RUnlock()

	var (
		nearest simulation.Hit
		found   bool
	)
	for el := w.colliders.Front(); el != nil; el = el.Next() {
		c := el.Value
		var (
			hit simulation.Hit
			ok  bool
		)
		switch c.kind {
		case ColliderActor:
			if filter.Excludes(c.actor) {
				continue
			}
			fallthrough
		case ColliderBox:
			bb := c.bounds()
			if !reach.IntersectsWith(bb) {
				continue
			}
			hit, ok = sweepBox(bb, half, origin, dir, maxDistance)
		case ColliderPlane:
			hit, ok = sweepPlane(c.normal, c.offset, capsule, origin, dir, maxDistance)
		}
		if ok && (!found || hit.Distance < nearest.Distance) {
			nearest, found = hit, true
		}
	}
	return nearest, found
}

// sweepBox sweeps a box with the half extents passed against bb, by casting a ray against bb grown
// by those half extents. Overlaps and touching faces only count as hits when moving further into bb.
func sweepBox(bb cube.BBox, half, origin, dir mgl32.Vec3, maxDistance float32) (simulation.Hit, bool) {
	expanded := bb.GrowVec3(half)
	if expanded.Vec3Within(origin) {
		normal := penetrationNormal(expanded, origin)
		if normal.Dot(dir) >= 0 {
			return simulation.Hit{}, false
		}
		return simulation.Hit{Normal: normal}, true
	}

	result, ok := trace.BBoxIntercept(expanded, origin, origin.Add(dir.Mul(maxDistance)))
	if !ok {
		return simulation.Hit{}, false
	}
	normal := faceNormal(result.Face())
	if normal.Dot(dir) >= 0 {
		// Touching a face while moving away from it.
		return simulation.Hit{}, false
	}
	return simulation.Hit{Distance: result.Position().Sub(origin).Len(), Normal: normal}, true
}

// sweepPlane sweeps the capsule against a half-space.
func sweepPlane(normal mgl32.Vec3, offset float32, capsule game.Capsule, origin, dir mgl32.Vec3, maxDistance float32) (simulation.Hit, bool) {
	gap := normal.Dot(origin) - offset - capsule.Support(normal)
	approach := dir.Dot(normal)
	if approach >= 0 {
		return simulation.Hit{}, false
	}
	if gap <= 0 {
		return simulation.Hit{Normal: normal}, true
	}
	if t := gap / -approach; t <= maxDistance {
		return simulation.Hit{Distance: t, Normal: normal}, true
	}
	return simulation.Hit{}, false
}

// penetrationNormal returns the normal of the face of bb that pos is closest to.
func penetrationNormal(bb cube.BBox, pos mgl32.Vec3) mgl32.Vec3 {
	min, max := bb.Min(), bb.Max()
	candidates := [...]struct {
		depth  float32
		normal mgl32.Vec3
	}{
		{pos.X() - min.X(), mgl32.Vec3{-1, 0, 0}},
		{max.X() - pos.X(), mgl32.Vec3{1, 0, 0}},
		{pos.Y() - min.Y(), mgl32.Vec3{0, -1, 0}},
		{max.Y() - pos.Y(), mgl32.Vec3{0, 1, 0}},
		{pos.Z() - min.Z(), mgl32.Vec3{0, 0, -1}},
		{max.Z() - pos.Z(), mgl32.Vec3{0, 0, 1}},
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.depth < best.depth {
			best = c
		}
	}
	return best.normal
}

func faceNormal(f cube.Face) mgl32.Vec3 {
	switch f {
	case cube.FaceDown:
		return mgl32.Vec3{0, -1, 0}
	case cube.FaceUp:
		return mgl32.Vec3{0, 1, 0}
	case cube.FaceNorth:
		return mgl32.Vec3{0, 0, -1}
	case cube.FaceSouth:
		return mgl32.Vec3{0, 0, 1}
	case cube.FaceWest:
		return mgl32.Vec3{-1, 0, 0}
	case cube.FaceEast:
		return mgl32.Vec3{1, 0, 0}
	}
	return mgl32.Vec3{}
}

// Distance returns the distance between the capsule at pos and the nearest static collider. It
// returns false if the world has no static colliders.
func (w *World) Distance(capsule game.Capsule, pos mgl32.Vec3) (float32, bool) {
	bb := capsule.BBox(pos)
	centre := bb.Min().Add(bb.Max()).Mul(0.5)

	w.RLock()
	defer w.RUnlock()

	var (
		nearest float32
		found   bool
	)
	for el := w.colliders.Front(); el != nil; el = el.Next() {
		var d float32
		switch c := el.Value; c.kind {
		case ColliderBox:
			d = game.AABBVectorDistance(c.box.GrowVec3(capsule.HalfExtents()), centre)
		case ColliderPlane:
			d = math32.Max(c.normal.Dot(pos)-c.offset-capsule.Support(c.normal), 0)
		default:
			continue
		}
		if !found || d < nearest {
			nearest, found = d, true
		}
	}
	return nearest, found
}
