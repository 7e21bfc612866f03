package puppet

import (
	"github.com/oomph-ac/puppeteer/game"
	"github.com/oomph-ac/puppeteer/oerror"
)

// Params are the geometry parameters of a puppet's collision handling.
type Params struct {
	// SkinThickness is the margin kept between the collider and any obstacle so that casts
	// starting next to a surface do not tunnel through it. Usually a small value like 0.025.
	SkinThickness float32
	// StepMoveDistance is the extra distance moved onto a step while climbing it. When this is too
	// small and the collider base isn't flat, the collider lands on the edge of the step and slides
	// off it.
	StepMoveDistance float32
	// StepHeight is the height of the tallest ledge the puppet can step up.
	StepHeight float32
	// MaxSlopeAngle is the steepest surface, in degrees, the puppet can walk up or stand on.
	MaxSlopeAngle float32
}

// DefaultParams returns the default puppet geometry parameters.
func DefaultParams() Params {
	return Params{
		SkinThickness:    game.DefaultSkinThickness,
		StepMoveDistance: game.DefaultStepMoveDistance,
		StepHeight:       game.DefaultStepHeight,
		MaxSlopeAngle:    game.DefaultMaxSlopeAngle,
	}
}

// Validate returns an error if the parameters cannot be used to simulate a puppet.
func (p Params) Validate() error {
	switch {
	case p.SkinThickness <= 0:
		return oerror.New("skin thickness must be positive, got %v", p.SkinThickness)
	case p.StepMoveDistance < 0:
		return oerror.New("step move distance must not be negative, got %v", p.StepMoveDistance)
	case p.StepHeight < 0:
		return oerror.New("step height must not be negative, got %v", p.StepHeight)
	case p.MaxSlopeAngle < 0 || p.MaxSlopeAngle > 90:
		return oerror.New("max slope angle must be within [0, 90] degrees, got %v", p.MaxSlopeAngle)
	}
	return nil
}
