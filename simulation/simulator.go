package simulation

import (
	"fmt"

	"github.com/oomph-ac/puppeteer/assert"
	"github.com/oomph-ac/puppeteer/game"
)

// Stage is a stage of the per-tick pipeline. Stages always run in order.
type Stage uint8

const (
	// StagePrepare checks if puppets are grounded.
	StagePrepare Stage = iota
	// StageCompute integrates locomotion, gravity, timers and jumps.
	StageCompute
	// StageMove resolves the tick's displacement against the world.
	StageMove
)

func (s Stage) String() string {
	switch s {
	case StagePrepare:
		return "prepare"
	case StageCompute:
		return "compute"
	case StageMove:
		return "move"
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// Options define simulator behaviour.
type Options struct {
	// MaxBounces caps the recursion depth of the collide-and-slide solver.
	MaxBounces int
	// VerticalEpsilon is the vertical speed under which a puppet is considered neither rising nor
	// falling when choosing its gravity multiplier.
	VerticalEpsilon float32

	// Debugf receives internal simulation trace logs for callers that need deep diagnostics.
	Debugf func(format string, args ...any)
}

// DefaultOptions returns the default simulator options.
func DefaultOptions() Options {
	return Options{
		MaxBounces:      game.DefaultMaxBounces,
		VerticalEpsilon: game.DefaultVerticalEpsilon,
	}
}

// Simulator runs the movement pipeline of puppets against a Caster. A Simulator holds no per-puppet
// state and may be shared by goroutines simulating different puppets.
type Simulator struct {
	Caster  Caster
	Options Options
}

// NewSimulator returns a simulator querying the caster passed.
func NewSimulator(caster Caster, opts Options) *Simulator {
	assert.IsTrue(caster != nil, "simulator requires a caster")
	assert.IsTrue(opts.MaxBounces > 0, "max bounces must be positive, got %d", opts.MaxBounces)
	return &Simulator{Caster: caster, Options: opts}
}

func (s *Simulator) debugf(stage Stage, format string, args ...any) {
	if s.Options.Debugf == nil {
		return
	}
	s.Options.Debugf("["+stage.String()+"] "+format, args...)
}
