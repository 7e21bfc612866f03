package game

import "time"

const (
	DefaultSkinThickness    = float32(0.025)
	DefaultStepHeight       = float32(0.5)
	DefaultStepMoveDistance = float32(0.2)
	DefaultMaxSlopeAngle    = float32(55.0)

	DefaultCapsuleRadius = float32(0.25)
	DefaultCapsuleLength = float32(1.2)

	DefaultAcceleration    = float32(45)
	DefaultDeceleration    = float32(45)
	DefaultTurnSpeed       = float32(128)
	DefaultAirAcceleration = float32(38.4)
	DefaultAirDeceleration = float32(6.4)
	DefaultAirTurnSpeed    = float32(6.4)
	DefaultMaxSpeed        = float32(7)
	DefaultGravity         = float32(9.81)

	DefaultJumpHeight                 = float32(1)
	DefaultTimeToJumpApex             = float32(0.3)
	DefaultJumpCutoff                 = float32(1.5)
	DefaultDownwardMovementMultiplier = float32(1)

	DefaultCoyoteTime = 150 * time.Millisecond
	DefaultJumpBuffer = 150 * time.Millisecond

	DefaultTickRate   = 64
	DefaultMaxBounces = 5

	// DefaultVerticalEpsilon is the vertical speed below which an actor counts as neither rising
	// nor falling when picking the next gravity multiplier.
	DefaultVerticalEpsilon = float32(0.01)

	// InputDeadzone is the move direction length at or below which the integrator brakes.
	InputDeadzone = float32(0.1)
	// VelocityDeadzone is the speed below which the integrator accelerates without turning.
	VelocityDeadzone = float32(0.1)

	// SlopeAngleEpsilon absorbs acos rounding when a normal sits exactly on the slope limit.
	SlopeAngleEpsilon = float32(1e-3)
)
