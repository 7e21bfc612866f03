package puppet

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/puppeteer/game"
)

// Input is the command interface controllers (players or AI) use to steer a puppet. Move direction
// is a per-tick command and the jump flags are edge triggered: all of them are consumed by the
// simulation.
type Input struct {
	moveDirection   mgl32.Vec3
	speedMultiplier float32

	jumpStart, jumpStop bool
}

func newInput() Input {
	return Input{speedMultiplier: 1}
}

// SetMoveDirection sets the direction to move in this tick. The vertical component is dropped and
// the direction is clamped to unit length.
func (in *Input) SetMoveDirection(dir mgl32.Vec3) {
	in.moveDirection = game.ClampLength(game.Horizontal(dir), 1)
}

// MoveDirection returns the move direction set for this tick.
func (in *Input) MoveDirection() mgl32.Vec3 {
	return in.moveDirection
}

// ClearMoveDirection clears the move direction once it has been consumed.
func (in *Input) ClearMoveDirection() {
	in.moveDirection = mgl32.Vec3{}
}

// SetSpeedMultiplier sets the multiplier applied to the profile's max speed.
func (in *Input) SetSpeedMultiplier(m float32) {
	in.speedMultiplier = m
}

// SpeedMultiplier returns the multiplier applied to the profile's max speed.
func (in *Input) SpeedMultiplier() float32 {
	return in.speedMultiplier
}

// StartJump requests a jump. The puppet keeps jumping until StopJump is called.
func (in *Input) StartJump() {
	in.jumpStart = true
}

// StopJump cancels the current jump.
func (in *Input) StopJump() {
	in.jumpStop = true
}

// JumpStartRequested returns true if a jump was requested and not yet consumed.
func (in *Input) JumpStartRequested() bool {
	return in.jumpStart
}

// ClearJumpStart consumes the jump request.
func (in *Input) ClearJumpStart() {
	in.jumpStart = false
}

// JumpStopRequested returns true if a jump cancel was requested and not yet consumed.
func (in *Input) JumpStopRequested() bool {
	return in.jumpStop
}

// ClearJumpStop consumes the jump cancel request.
func (in *Input) ClearJumpStop() {
	in.jumpStop = false
}
