package world

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/puppeteer/game"
	"github.com/oomph-ac/puppeteer/puppet"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// World is a collection of static colliders and puppet capsules that shapes can be swept
// against. It implements simulation.Caster. A World is safe for concurrent use: casts only take
// a read lock.
type World struct {
	lastID    ColliderID
	colliders *orderedmap.OrderedMap[ColliderID, *collider]
	actors    map[puppet.ID]ColliderID

	log *logrus.Logger

	deadlock.RWMutex
}

// New creates an empty world. The logger may be nil.
func New(log *logrus.Logger) *World {
	return &World{
		colliders: orderedmap.NewOrderedMap[ColliderID, *collider](),
		actors:    make(map[puppet.ID]ColliderID),
		log:       log,
	}
}

// AddBox adds a static box to the world.
func (w *World) AddBox(bb cube.BBox) ColliderID {
	w.Lock()
	defer w.Unlock()

	id := w.add(&collider{kind: ColliderBox, box: bb})
	w.debugf("added box %d (min=%v max=%v)", id, bb.Min(), bb.Max())
	return id
}

// AddPlane adds a static half-space to the world. Points p with dot(normal, p) < offset are solid.
func (w *World) AddPlane(normal mgl32.Vec3, offset float32) ColliderID {
	w.Lock()
	defer w.Unlock()

	n := game.NormalizeOrZero(normal)
	if n == (mgl32.Vec3{}) {
		n = game.Up
	}
	id := w.add(&collider{kind: ColliderPlane, normal: n, offset: offset})
	w.debugf("added plane %d (normal=%v offset=%v)", id, n, offset)
	return id
}

// SetActor adds the capsule of a puppet to the world, or moves it if it was already added.
func (w *World) SetActor(id puppet.ID, capsule game.Capsule, pos mgl32.Vec3) {
	w.Lock()
	defer w.Unlock()

	if cid, ok := w.actors[id]; ok {
		c, _ := w.colliders.Get(cid)
		c.capsule, c.pos = capsule, pos
		return
	}
	w.actors[id] = w.add(&collider{kind: ColliderActor, actor: id, capsule: capsule, pos: pos})
	w.debugf("added actor %d", id)
}

// RemoveActor removes the capsule of a puppet from the world.
func (w *World) RemoveActor(id puppet.ID) bool {
	w.Lock()
	defer w.Unlock()

	cid, ok := w.actors[id]
	if !ok {
		return false
	}
	delete(w.actors, id)
	w.colliders.Delete(cid)
	w.debugf("removed actor %d", id)
	return true
}

// Remove removes a collider from the world.
func (w *World) Remove(id ColliderID) bool {
	w.Lock()
	defer w.Unlock()

	c, ok := w.colliders.Get(id)
	if !ok {
		return false
	}
	if c.kind == ColliderActor {
		delete(w.actors, c.actor)
	}
	w.colliders.Delete(id)
	return true
}

// Kind returns the kind of the collider with the ID passed.
func (w *World) Kind(id ColliderID) (ColliderKind, bool) {
	w.RLock()
	defer w.RUnlock()

	c, ok := w.colliders.Get(id)
	if !ok {
		return 0, false
	}
	return c.kind, true
}

// Len returns the amount of colliders in the world.
func (w *World) Len() int {
	w.RLock()
	defer w.RUnlock()
	return w.colliders.Len()
}

// add registers a collider. The caller must hold the write lock.
func (w *World) add(c *collider) ColliderID {
	w.lastID++
	w.colliders.Set(w.lastID, c)
	return w.lastID
}

func (w *World) debugf(format string, args ...any) {
	if w.log != nil {
		w.log.Debugf(format, args...)
	}
}
