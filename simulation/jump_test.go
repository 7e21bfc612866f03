package simulation

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/puppeteer/puppet"
)

const testDelta = time.Second / 64

func jumpSpeed(p *puppet.Puppet) float32 {
	profile := p.Profile()
	return 2 * profile.JumpHeight / profile.TimeToJumpApex
}

func TestJumpGrantedWhenGrounded(t *testing.T) {
	sim := NewSimulator(floorCaster{}, DefaultOptions())
	p := newTestPuppet(t, mgl32.Vec3{0, standingHeight(), 0})

	p.Input().StartJump()
	res := sim.Step(p, testDelta)
	if !res.Grounded {
		t.Fatalf("expected puppet to start the tick grounded")
	}
	if want := jumpSpeed(p); !approxEq(p.VerticalVelocity(), want, 1e-3) {
		t.Fatalf("expected jump speed %v, got %v", want, p.VerticalVelocity())
	}
	if p.Input().JumpStartRequested() {
		t.Fatalf("expected the jump request to be consumed")
	}
	if !p.State().Jumping || p.State().JumpBuffer == nil {
		t.Fatalf("expected jumping state with an armed buffer, got %+v", p.State())
	}
	if res.Displacement.Y() <= 0 {
		t.Fatalf("expected upward displacement, got %v", res.Displacement)
	}
}

func TestJumpGrantedDuringCoyoteTime(t *testing.T) {
	sim := NewSimulator(noneCaster{}, DefaultOptions())
	p := newTestPuppet(t, mgl32.Vec3{0, 10, 0})

	sim.Step(p, testDelta)
	if p.State().CoyoteTime == nil || p.State().CoyoteTime.Finished() {
		t.Fatalf("expected a running coyote timer after leaving the ground")
	}
	if p.VerticalVelocity() >= 0 {
		t.Fatalf("expected to fall, got %v", p.VerticalVelocity())
	}

	p.Input().StartJump()
	sim.Step(p, testDelta)
	if want := jumpSpeed(p); !approxEq(p.VerticalVelocity(), want, 1e-3) {
		t.Fatalf("expected coyote jump speed %v, got %v", want, p.VerticalVelocity())
	}
	if !p.State().CoyoteTime.Finished() {
		t.Fatalf("expected the jump to end coyote time")
	}
	if p.State().AirJumps() != 0 {
		t.Fatalf("expected a coyote jump not to use air jumps")
	}
}

func TestJumpDeniedAfterCoyoteTime(t *testing.T) {
	sim := NewSimulator(noneCaster{}, DefaultOptions())
	p := newTestPuppet(t, mgl32.Vec3{0, 10, 0})

	ticks := int(p.Profile().CoyoteTime/testDelta) + 2
	for i := 0; i < ticks; i++ {
		sim.Step(p, testDelta)
	}
	p.Input().StartJump()
	sim.Step(p, testDelta)
	if p.VerticalVelocity() >= 0 {
		t.Fatalf("expected the jump to be denied, got vertical velocity %v", p.VerticalVelocity())
	}
	if p.State().JumpBuffer == nil {
		t.Fatalf("expected a denied jump to arm the buffer")
	}
	if !p.Input().JumpStartRequested() {
		t.Fatalf("expected the request to stay pending while buffered")
	}
}

func TestJumpBufferedUntilLanding(t *testing.T) {
	profile := puppet.DefaultProfile()
	profile.CoyoteTime = 0
	sim := NewSimulator(floorCaster{}, DefaultOptions())
	p := newTestPuppet(t, mgl32.Vec3{0, standingHeight() + 0.1, 0}, puppet.WithProfile(profile))
	p.MoveTo(mgl32.Vec3{0, -3, 0})

	p.Input().StartJump()
	for i := 0; i < 9; i++ {
		res := sim.Step(p, testDelta)
		if !res.Grounded {
			if p.VerticalVelocity() >= 0 {
				t.Fatalf("tick %d: expected no jump while airborne, got %v", i, p.VerticalVelocity())
			}
			if p.State().JumpBuffer == nil {
				t.Fatalf("tick %d: expected an armed buffer while airborne", i)
			}
			continue
		}
		if want := jumpSpeed(p); !approxEq(p.VerticalVelocity(), want, 1e-3) {
			t.Fatalf("tick %d: expected buffered jump on landing with speed %v, got %v", i, want, p.VerticalVelocity())
		}
		return
	}
	t.Fatalf("expected the puppet to land within the jump buffer")
}

func TestJumpBufferExpires(t *testing.T) {
	profile := puppet.DefaultProfile()
	profile.CoyoteTime = 0
	sim := NewSimulator(noneCaster{}, DefaultOptions())
	p := newTestPuppet(t, mgl32.Vec3{0, 100, 0}, puppet.WithProfile(profile))

	p.Input().StartJump()
	ticks := int(profile.JumpBuffer/testDelta) + 2
	for i := 0; i < ticks; i++ {
		sim.Step(p, testDelta)
	}
	if p.Input().JumpStartRequested() || p.State().JumpBuffer != nil {
		t.Fatalf("expected the pending jump to be dropped once the buffer expired")
	}
}

func TestAirJumpExhaustion(t *testing.T) {
	profile := puppet.DefaultProfile()
	profile.CoyoteTime = 0
	profile.MaxAirJumps = 1
	sim := NewSimulator(noneCaster{}, DefaultOptions())
	p := newTestPuppet(t, mgl32.Vec3{0, 100, 0}, puppet.WithProfile(profile))

	p.Input().StartJump()
	sim.Step(p, testDelta)
	if want := jumpSpeed(p); !approxEq(p.VerticalVelocity(), want, 1e-3) {
		t.Fatalf("expected air jump speed %v, got %v", want, p.VerticalVelocity())
	}
	if p.State().AirJumps() != 1 {
		t.Fatalf("expected one air jump used, got %d", p.State().AirJumps())
	}

	before := p.VerticalVelocity()
	p.Input().StartJump()
	sim.Step(p, testDelta)
	if p.VerticalVelocity() >= before {
		t.Fatalf("expected the second air jump to be denied, got %v (was %v)", p.VerticalVelocity(), before)
	}
	if p.State().AirJumps() != 1 {
		t.Fatalf("expected air jump count to stay at 1, got %d", p.State().AirJumps())
	}
	if p.State().JumpBuffer == nil {
		t.Fatalf("expected the denied air jump to arm the buffer")
	}
}

func TestGravityMultiplier(t *testing.T) {
	profile := puppet.DefaultProfile()
	profile.DownwardMovementMultiplier = 2
	sim := NewSimulator(floorCaster{}, DefaultOptions())
	p := newTestPuppet(t, mgl32.Vec3{0, standingHeight(), 0}, puppet.WithProfile(profile))

	p.Input().StartJump()
	sim.Step(p, testDelta)
	if m := p.State().GravityMultiplier; m != 1 {
		t.Fatalf("expected multiplier 1 while rising and jumping, got %v", m)
	}

	p.Input().StopJump()
	sim.Step(p, testDelta)
	if m := p.State().GravityMultiplier; m != profile.JumpCutoff {
		t.Fatalf("expected jump cutoff %v after releasing jump, got %v", profile.JumpCutoff, m)
	}

	for i := 0; i < 200 && p.VerticalVelocity() >= -0.1; i++ {
		sim.Step(p, testDelta)
	}
	if m := p.State().GravityMultiplier; m != profile.DownwardMovementMultiplier {
		t.Fatalf("expected downward multiplier %v while falling, got %v", profile.DownwardMovementMultiplier, m)
	}
}

func stepUntilGrounded(t *testing.T, sim *Simulator, p *puppet.Puppet) {
	t.Helper()
	for i := 0; i < 400; i++ {
		if sim.Step(p, testDelta).Grounded {
			return
		}
	}
	t.Fatalf("expected the puppet to land, still airborne at %v", p.Position())
}

func TestLandingClearsVerticalVelocity(t *testing.T) {
	profile := puppet.DefaultProfile()
	profile.DownwardMovementMultiplier = 2
	sim := NewSimulator(floorCaster{}, DefaultOptions())
	p := newTestPuppet(t, mgl32.Vec3{0, standingHeight(), 0}, puppet.WithProfile(profile))

	p.Input().StartJump()
	sim.Step(p, testDelta)
	first := p.VerticalVelocity()

	stepUntilGrounded(t, sim, p)
	for i := 0; i < 200; i++ {
		sim.Step(p, testDelta)
	}
	if !p.Grounded() {
		t.Fatalf("expected the puppet to rest on the floor, got %v", p.Position())
	}
	if vy := p.VerticalVelocity(); vy != 0 {
		t.Fatalf("expected no vertical velocity at rest, got %v", vy)
	}
	if m := p.State().GravityMultiplier; m != 1 {
		t.Fatalf("expected multiplier 1 at rest, got %v", m)
	}

	p.Input().StartJump()
	sim.Step(p, testDelta)
	if want := jumpSpeed(p); !approxEq(p.VerticalVelocity(), want, 1e-3) || !approxEq(first, want, 1e-3) {
		t.Fatalf("expected both jumps at speed %v, got %v then %v", want, first, p.VerticalVelocity())
	}
}

func TestLandingRestoresAirJumps(t *testing.T) {
	profile := puppet.DefaultProfile()
	profile.CoyoteTime = 0
	profile.MaxAirJumps = 1
	sim := NewSimulator(floorCaster{}, DefaultOptions())
	p := newTestPuppet(t, mgl32.Vec3{0, standingHeight() + 1, 0}, puppet.WithProfile(profile))

	sim.Step(p, testDelta)
	p.Input().StartJump()
	sim.Step(p, testDelta)
	if p.State().AirJumps() != 1 {
		t.Fatalf("expected one air jump used, got %d", p.State().AirJumps())
	}

	stepUntilGrounded(t, sim, p)
	if p.State().AirJumpCount != nil {
		t.Fatalf("expected landing to clear the air jump count, got %d", p.State().AirJumps())
	}

	// The floor disappears: the puppet falls and coyote time is already over.
	sim.Caster = noneCaster{}
	for i := 0; i < 4; i++ {
		sim.Step(p, testDelta)
	}
	if p.VerticalVelocity() >= 0 {
		t.Fatalf("expected to fall after losing the floor, got %v", p.VerticalVelocity())
	}
	p.Input().StartJump()
	sim.Step(p, testDelta)
	if want := jumpSpeed(p); !approxEq(p.VerticalVelocity(), want, 1e-3) {
		t.Fatalf("expected the restored air jump at speed %v, got %v", want, p.VerticalVelocity())
	}
	if p.State().AirJumps() != 1 {
		t.Fatalf("expected one air jump used after walking off, got %d", p.State().AirJumps())
	}
}
