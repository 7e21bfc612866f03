package puppet

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/puppeteer/game"
	"github.com/oomph-ac/puppeteer/oerror"
)

// ID uniquely identifies a puppet within a world.
type ID uint64

// Puppet is a kinematic actor that can interact with physics objects and simulate movement. It
// collides with objects and slides along surfaces while respecting its step height and maximum
// slope angle.
type Puppet struct {
	id       ID
	collider game.Capsule

	pos, lastPos mgl32.Vec3

	params  Params
	profile Profile

	input Input
	state State
}

// Option configures a puppet on creation.
type Option func(p *Puppet)

// WithParams overrides the default geometry parameters.
func WithParams(params Params) Option {
	return func(p *Puppet) {
		p.params = params
	}
}

// WithProfile overrides the default locomotion profile.
func WithProfile(profile Profile) Option {
	return func(p *Puppet) {
		p.profile = profile
	}
}

// New creates a puppet with the collider and position passed. A puppet always has a collider,
// a position and a locomotion profile: defaults are used unless overridden by opts.
func New(id ID, collider game.Capsule, pos mgl32.Vec3, opts ...Option) (*Puppet, error) {
	if !collider.Valid() {
		return nil, oerror.New(game.ErrorInvalidCollider, collider.Radius, collider.Length)
	}

	p := &Puppet{
		id:       id,
		collider: collider,
		pos:      pos,
		lastPos:  pos,
		params:   DefaultParams(),
		profile:  DefaultProfile(),
		input:    newInput(),
		state:    newState(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.params.Validate(); err != nil {
		return nil, err
	}
	if err := p.profile.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ID returns the identifier of the puppet.
func (p *Puppet) ID() ID {
	return p.id
}

// Collider returns the capsule collider of the puppet.
func (p *Puppet) Collider() game.Capsule {
	return p.collider
}

// Params returns the geometry parameters of the puppet.
func (p *Puppet) Params() Params {
	return p.params
}

// Profile returns the locomotion profile of the puppet.
func (p *Puppet) Profile() Profile {
	return p.profile
}

// Input returns the command interface of the puppet.
func (p *Puppet) Input() *Input {
	return &p.input
}

// State returns the locomotion state of the puppet. Only the simulation should mutate it.
func (p *Puppet) State() *State {
	return &p.state
}

// Checkpoint is a saved copy of the input and locomotion state of a puppet.
type Checkpoint struct {
	input Input
	state State
}

// Checkpoint saves the input and locomotion state of the puppet, so that a tick that could not be
// completed can be undone with Restore.
func (p *Puppet) Checkpoint() Checkpoint {
	return Checkpoint{input: p.input, state: p.state.clone()}
}

// Restore resets the input and locomotion state of the puppet to the checkpoint passed.
func (p *Puppet) Restore(c Checkpoint) {
	p.input = c.input
	p.state = c.state.clone()
}

// Position returns the current position of the centre of the puppet's collider.
func (p *Puppet) Position() mgl32.Vec3 {
	return p.pos
}

// LastPosition returns the position of the puppet before the last commit.
func (p *Puppet) LastPosition() mgl32.Vec3 {
	return p.lastPos
}

// SetPosition commits a new position for the puppet.
func (p *Puppet) SetPosition(pos mgl32.Vec3) {
	p.lastPos = p.pos
	p.pos = pos
}

// Teleport moves the puppet without treating the move as the result of a tick.
func (p *Puppet) Teleport(pos mgl32.Vec3) {
	p.pos = pos
	p.lastPos = pos
}

// Grounded returns true if the puppet was standing on a surface during the last tick.
func (p *Puppet) Grounded() bool {
	return p.state.Grounded
}

// VerticalVelocity returns the current vertical velocity of the puppet.
func (p *Puppet) VerticalVelocity() float32 {
	return p.state.VerticalVelocity
}

// Velocity returns the full velocity of the puppet.
func (p *Puppet) Velocity() mgl32.Vec3 {
	v := p.state.HorizontalVelocity
	v[1] = p.state.VerticalVelocity
	return v
}

// MoveTo sets the velocity the puppet tries to move with. The horizontal part is kept as the
// puppet's horizontal velocity and the vertical part as its vertical velocity. Gravity, collision
// detection and surface sliding are applied on the next tick.
func (p *Puppet) MoveTo(vel mgl32.Vec3) {
	p.state.HorizontalVelocity = game.Horizontal(vel)
	p.state.VerticalVelocity = vel.Y()
}
