package scene

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/puppeteer/game"
	"github.com/oomph-ac/puppeteer/oerror"
	"github.com/oomph-ac/puppeteer/puppet"
	"github.com/oomph-ac/puppeteer/simulation"
	"github.com/oomph-ac/puppeteer/world"
	"github.com/oomph-ac/puppeteer/worker"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
)

// DefaultHistorySize is the amount of snapshots kept per puppet by default.
const DefaultHistorySize = 128

type actor struct {
	p       *puppet.Puppet
	history *History
}

// Scene steps a set of puppets inside a world. Every tick, all puppets are simulated in parallel
// against the world as it was at the start of the tick, and only then are the results committed.
type Scene struct {
	world *world.World
	sim   *simulation.Simulator
	clock *simulation.Clock
	log   *logrus.Logger

	historySize int
	actors      *orderedmap.OrderedMap[puppet.ID, *actor]

	digest *xxh3.Hasher
	stats  statsRecorder

	mu deadlock.Mutex
}

// Option configures a scene on creation.
type Option func(s *Scene)

// WithHistorySize sets the amount of snapshots kept per puppet.
func WithHistorySize(n int) Option {
	return func(s *Scene) {
		s.historySize = n
	}
}

// New creates a scene simulating puppets in the world with the simulator and clock passed. The scene
// runs its own copy of the simulator: if the logger has debug logging enabled and the simulator has
// no trace function, the copy sends its traces to the logger.
func New(w *world.World, sim *simulation.Simulator, clock *simulation.Clock, log *logrus.Logger, opts ...Option) *Scene {
	if log == nil {
		log = logrus.New()
	}
	own := *sim
	if own.Options.Debugf == nil && log.IsLevelEnabled(logrus.DebugLevel) {
		own.Options.Debugf = log.Debugf
	}

	s := &Scene{
		world:       w,
		sim:         &own,
		clock:       clock,
		log:         log,
		historySize: DefaultHistorySize,
		actors:      orderedmap.NewOrderedMap[puppet.ID, *actor](),
		digest:      xxh3.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Spawn adds a puppet to the scene and its collider to the world.
func (s *Scene) Spawn(p *puppet.Puppet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.actors.Get(p.ID()); ok {
		return oerror.New(game.ErrorDuplicatePuppet, p.ID())
	}
	s.actors.Set(p.ID(), &actor{p: p, history: NewHistory(s.historySize)})
	s.world.SetActor(p.ID(), p.Collider(), p.Position())
	s.log.WithFields(logrus.Fields{"puppet": p.ID(), "pos": p.Position()}).Info("puppet spawned")
	return nil
}

// Despawn removes a puppet from the scene and the world.
func (s *Scene) Despawn(id puppet.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.actors.Delete(id) {
		return false
	}
	s.world.RemoveActor(id)
	s.log.WithField("puppet", id).Info("puppet despawned")
	return true
}

// Actor returns the puppet with the ID passed.
func (s *Scene) Actor(id puppet.ID) (*puppet.Puppet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.actors.Get(id)
	if !ok {
		return nil, false
	}
	return a.p, true
}

// History returns the snapshot history of the puppet with the ID passed, or nil if the puppet is
// not in the scene.
func (s *Scene) History(id puppet.ID) *History {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.actors.Get(id)
	if !ok {
		return nil
	}
	return a.history
}

// Len returns the amount of puppets in the scene.
func (s *Scene) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actors.Len()
}

// Clock returns the clock of the scene.
func (s *Scene) Clock() *simulation.Clock {
	return s.clock
}

// Run runs n ticks.
func (s *Scene) Run(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

// Tick advances the clock by one tick, simulates every puppet on the worker pool and commits the
// results once all puppets are done. A puppet whose tick panics is left as it was before the tick.
func (s *Scene) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	delta := s.clock.Advance()
	tick := s.clock.Tick()

	actors := make([]*actor, 0, s.actors.Len())
	for el := s.actors.Front(); el != nil; el = el.Next() {
		actors = append(actors, el.Value)
	}

	results := make([]simulation.Result, len(actors))
	done := make([]bool, len(actors))
	checkpoints := make([]puppet.Checkpoint, len(actors))
	var wg sync.WaitGroup
	wg.Add(len(actors))
	for i, a := range actors {
		checkpoints[i] = a.p.Checkpoint()
		worker.Submit(func() {
			defer wg.Done()
			results[i] = s.sim.Tick(a.p, delta)
			done[i] = true
		})
	}
	wg.Wait()

	for i, a := range actors {
		if !done[i] {
			a.p.Restore(checkpoints[i])
			s.stats.stats.FailedSolves++
			s.log.WithFields(logrus.Fields{"puppet": a.p.ID(), "tick": tick}).Warn("puppet simulation failed, tick rolled back")
			continue
		}
		s.commit(tick, a, results[i])
	}
}

// commit applies the result of a puppet's tick to the puppet, the world and the scene records.
func (s *Scene) commit(tick uint64, a *actor, res simulation.Result) {
	simulation.Commit(a.p, res)
	s.world.SetActor(a.p.ID(), a.p.Collider(), res.Position)
	a.history.Add(Snapshot{Tick: tick, Position: res.Position, Grounded: res.Grounded})

	var buf [28]byte
	binary.LittleEndian.PutUint64(buf[0:], tick)
	binary.LittleEndian.PutUint64(buf[8:], uint64(a.p.ID()))
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(res.Position[i]))
	}
	_, _ = s.digest.Write(buf[:])

	s.stats.addBounces(res.Stats.Bounces)
	s.stats.stats.Solves++
	if res.Stats.Stepped {
		s.stats.stats.Steps++
	}
	if res.Stats.Capped {
		s.stats.stats.CappedSolves++
	}
}

// Digest returns a hash of every position committed so far. Two runs of the same scene with the
// same inputs produce the same digest.
func (s *Scene) Digest() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.digest.Sum64()
}

// Stats returns the solver statistics of the scene.
func (s *Scene) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.snapshot()
}
