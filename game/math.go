package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// normalizeEpsilon is the squared length under which a vector is treated as zero.
const normalizeEpsilon = 1e-12

// Up is the world up axis.
var Up = mgl32.Vec3{0, 1, 0}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3ApproxEq compares two vectors component-wise with the given threshold.
func Vec3ApproxEq(a, b mgl32.Vec3, threshold float32) bool {
	return math32.Abs(a[0]-b[0]) <= threshold &&
		math32.Abs(a[1]-b[1]) <= threshold &&
		math32.Abs(a[2]-b[2]) <= threshold
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// Horizontal returns the vector with its Y component dropped.
func Horizontal(vec3 mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{vec3.X(), 0, vec3.Z()}
}

// NormalizeOrZero returns the unit vector of vec3, or the zero vector if vec3 has no usable length.
// It never produces NaN components.
func NormalizeOrZero(vec3 mgl32.Vec3) mgl32.Vec3 {
	lenSqr := vec3.LenSqr()
	if lenSqr <= normalizeEpsilon || math32.IsNaN(lenSqr) || math32.IsInf(lenSqr, 0) {
		return mgl32.Vec3{}
	}
	return vec3.Mul(1 / math32.Sqrt(lenSqr))
}

// ClampLength scales vec3 down so that its length does not exceed max.
func ClampLength(vec3 mgl32.Vec3, max float32) mgl32.Vec3 {
	if l := vec3.Len(); l > max && l > 0 {
		return vec3.Mul(max / l)
	}
	return vec3
}

// ProjectOnPlane removes the component of vec3 along the plane normal. A degenerate normal leaves
// vec3 untouched.
func ProjectOnPlane(vec3, normal mgl32.Vec3) mgl32.Vec3 {
	sqrMag := normal.Dot(normal)
	if sqrMag < mgl32.Epsilon {
		return vec3
	}
	return vec3.Sub(normal.Mul(vec3.Dot(normal) / sqrMag))
}

// ProjectAndScale projects vec3 onto the plane and rescales the result to the original length of
// vec3, so that redirected motion keeps its magnitude.
func ProjectAndScale(vec3, normal mgl32.Vec3) mgl32.Vec3 {
	return NormalizeOrZero(ProjectOnPlane(vec3, normal)).Mul(vec3.Len())
}

// MoveTowards moves current towards target by at most maxDelta. The remaining distance is measured
// horizontally.
func MoveTowards(current, target mgl32.Vec3, maxDelta float32) mgl32.Vec3 {
	delta := target.Sub(current)
	if math32.Sqrt(Vec3HzDistSqr(delta)) <= maxDelta {
		return target
	}
	return current.Add(NormalizeOrZero(delta).Mul(maxDelta))
}

// AngleFromUp returns the angle in degrees between the world up axis and the given normal.
func AngleFromUp(normal mgl32.Vec3) float32 {
	n := NormalizeOrZero(normal)
	if n == (mgl32.Vec3{}) {
		return 90
	}
	return mgl32.RadToDeg(math32.Acos(ClampFloat(n.Dot(Up), -1, 1)))
}

// Walkable returns true if a surface with the given normal is shallow enough to stand on.
func Walkable(normal mgl32.Vec3, maxSlopeAngle float32) bool {
	return AngleFromUp(normal) <= maxSlopeAngle+SlopeAngleEpsilon
}

// RoundVec32 will round a 32-bit vector to a given precision.
func RoundVec32(v mgl32.Vec3, p int) mgl32.Vec3 {
	return mgl32.Vec3{Round32(v.X(), p), Round32(v.Y(), p), Round32(v.Z(), p)}
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}
