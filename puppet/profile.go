package puppet

import (
	"time"

	"github.com/oomph-ac/puppeteer/game"
	"github.com/oomph-ac/puppeteer/oerror"
)

// Profile holds the locomotion tunables of a puppet. Rates are in units per second squared and are
// scaled by the tick duration when applied.
type Profile struct {
	Acceleration float32
	Deceleration float32
	TurnSpeed    float32

	AirAcceleration float32
	AirDeceleration float32
	AirTurnSpeed    float32

	MaxSpeed float32
	Gravity  float32

	JumpHeight     float32
	TimeToJumpApex float32
	// JumpCutoff is the gravity multiplier applied while rising after the jump input is released.
	JumpCutoff float32
	// DownwardMovementMultiplier is the gravity multiplier applied while falling.
	DownwardMovementMultiplier float32
	MaxAirJumps                uint32

	CoyoteTime time.Duration
	JumpBuffer time.Duration
}

// DefaultProfile returns the default locomotion profile.
func DefaultProfile() Profile {
	return Profile{
		Acceleration:               game.DefaultAcceleration,
		Deceleration:               game.DefaultDeceleration,
		TurnSpeed:                  game.DefaultTurnSpeed,
		AirAcceleration:            game.DefaultAirAcceleration,
		AirDeceleration:            game.DefaultAirDeceleration,
		AirTurnSpeed:               game.DefaultAirTurnSpeed,
		MaxSpeed:                   game.DefaultMaxSpeed,
		Gravity:                    game.DefaultGravity,
		JumpHeight:                 game.DefaultJumpHeight,
		TimeToJumpApex:             game.DefaultTimeToJumpApex,
		JumpCutoff:                 game.DefaultJumpCutoff,
		DownwardMovementMultiplier: game.DefaultDownwardMovementMultiplier,
		CoyoteTime:                 game.DefaultCoyoteTime,
		JumpBuffer:                 game.DefaultJumpBuffer,
	}
}

// Validate returns an error if the profile cannot be used to simulate a puppet.
func (p Profile) Validate() error {
	switch {
	case p.Acceleration < 0 || p.Deceleration < 0 || p.TurnSpeed < 0:
		return oerror.New("grounded rates must not be negative")
	case p.AirAcceleration < 0 || p.AirDeceleration < 0 || p.AirTurnSpeed < 0:
		return oerror.New("airborne rates must not be negative")
	case p.MaxSpeed < 0:
		return oerror.New("max speed must not be negative, got %v", p.MaxSpeed)
	case p.Gravity <= 0:
		return oerror.New("gravity must be positive, got %v", p.Gravity)
	case p.JumpHeight < 0:
		return oerror.New("jump height must not be negative, got %v", p.JumpHeight)
	case p.TimeToJumpApex <= 0:
		return oerror.New("time to jump apex must be positive, got %v", p.TimeToJumpApex)
	case p.JumpCutoff <= 0 || p.DownwardMovementMultiplier <= 0:
		return oerror.New("gravity multipliers must be positive")
	case p.CoyoteTime < 0 || p.JumpBuffer < 0:
		return oerror.New("coyote time and jump buffer must not be negative")
	}
	return nil
}
