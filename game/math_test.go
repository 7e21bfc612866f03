package game

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNormalizeOrZero(t *testing.T) {
	if v := NormalizeOrZero(mgl32.Vec3{}); v != (mgl32.Vec3{}) {
		t.Fatalf("expected zero, got %v", v)
	}
	if v := NormalizeOrZero(mgl32.Vec3{math32.NaN(), 0, 0}); v != (mgl32.Vec3{}) {
		t.Fatalf("expected NaN input to give zero, got %v", v)
	}
	if v := NormalizeOrZero(mgl32.Vec3{0, 3, 4}); !Vec3ApproxEq(v, mgl32.Vec3{0, 0.6, 0.8}, 1e-6) {
		t.Fatalf("unexpected unit vector %v", v)
	}
}

func TestWalkable(t *testing.T) {
	at := func(deg float32) mgl32.Vec3 {
		rad := mgl32.DegToRad(deg)
		return mgl32.Vec3{math32.Sin(rad), math32.Cos(rad), 0}
	}
	if !Walkable(at(55), 55) {
		t.Fatalf("expected a surface at the limit to be walkable")
	}
	if Walkable(at(56), 55) {
		t.Fatalf("expected a surface past the limit not to be walkable")
	}
	if Walkable(mgl32.Vec3{}, 55) {
		t.Fatalf("expected a degenerate normal not to be walkable")
	}
	if !Walkable(Up, 0) {
		t.Fatalf("expected flat ground to always be walkable")
	}
}

func TestProjectAndScale(t *testing.T) {
	v := ProjectAndScale(mgl32.Vec3{2, 0, 0}, NormalizeOrZero(mgl32.Vec3{-1, 1, 0}))
	if !Float32ApproxEq(v.Len(), 2) || !Float32ApproxEq(v.X(), v.Y()) {
		t.Fatalf("expected a slope aligned vector of length 2, got %v", v)
	}
	if v := ProjectAndScale(mgl32.Vec3{0, -1, 0}, Up); v != (mgl32.Vec3{}) {
		t.Fatalf("expected motion into the plane to vanish, got %v", v)
	}
}

func TestMoveTowards(t *testing.T) {
	if v := MoveTowards(mgl32.Vec3{}, mgl32.Vec3{3, 0, 4}, 10); v != (mgl32.Vec3{3, 0, 4}) {
		t.Fatalf("expected to reach the target, got %v", v)
	}
	if v := MoveTowards(mgl32.Vec3{}, mgl32.Vec3{3, 0, 4}, 1); !Vec3ApproxEq(v, mgl32.Vec3{0.6, 0, 0.8}, 1e-6) {
		t.Fatalf("expected a unit step, got %v", v)
	}
}

func TestCapsule(t *testing.T) {
	c := DefaultCapsule()
	if !Float32ApproxEq(c.Height(), 1.7) {
		t.Fatalf("expected height 1.7, got %v", c.Height())
	}
	if !Float32ApproxEq(c.Support(Up), c.HalfExtents().Y()) || !Float32ApproxEq(c.Support(mgl32.Vec3{1, 0, 0}), c.Radius) {
		t.Fatalf("unexpected support distances")
	}
	bb := c.BBox(mgl32.Vec3{0, 1, 0})
	if !Vec3ApproxEq(bb.Min(), mgl32.Vec3{-0.25, 0.15, -0.25}, 1e-6) || !Vec3ApproxEq(bb.Max(), mgl32.Vec3{0.25, 1.85, 0.25}, 1e-6) {
		t.Fatalf("unexpected bounding box %v %v", bb.Min(), bb.Max())
	}
	if d := AABBVectorDistance(bb, mgl32.Vec3{0, 3, 0}); !Float32ApproxEq(d, 1.15) {
		t.Fatalf("expected distance 1.15, got %v", d)
	}
}
