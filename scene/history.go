package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/puppeteer/assert"
)

// Snapshot is the committed state of a puppet at the end of a tick.
type Snapshot struct {
	Tick     uint64
	Position mgl32.Vec3
	Grounded bool
}

// History is a fixed-size circular buffer of the most recent snapshots of a puppet.
type History struct {
	buffer []Snapshot
	head   int // Points to the next write position
	size   int
}

// NewHistory creates a history holding at most capacity snapshots.
func NewHistory(capacity int) *History {
	assert.IsTrue(capacity > 0, "history capacity must be positive, got %d", capacity)
	return &History{buffer: make([]Snapshot, capacity)}
}

// Add inserts a snapshot, overwriting the oldest one once the history is full.
func (h *History) Add(s Snapshot) {
	h.buffer[h.head] = s
	h.head = (h.head + 1) % len(h.buffer)
	if h.size < len(h.buffer) {
		h.size++
	}
}

// Get returns the snapshot of the tick passed.
func (h *History) Get(tick uint64) (Snapshot, bool) {
	for i := 0; i < h.size; i++ {
		s := h.at(i)
		if s.Tick == tick {
			return s, true
		}
		// Snapshots are added in tick order.
		if s.Tick < tick {
			break
		}
	}
	return Snapshot{}, false
}

// Range returns the snapshots with ticks in [start, end], oldest first.
func (h *History) Range(start, end uint64) []Snapshot {
	var result []Snapshot
	for i := h.size - 1; i >= 0; i-- {
		if s := h.at(i); s.Tick >= start && s.Tick <= end {
			result = append(result, s)
		}
	}
	return result
}

// Latest returns the most recently added snapshot.
func (h *History) Latest() (Snapshot, bool) {
	if h.size == 0 {
		return Snapshot{}, false
	}
	return h.at(0), true
}

// Len returns the amount of snapshots held.
func (h *History) Len() int {
	return h.size
}

// Cap returns the maximum amount of snapshots held.
func (h *History) Cap() int {
	return len(h.buffer)
}

// Clear removes all snapshots.
func (h *History) Clear() {
	h.head, h.size = 0, 0
}

// at returns the i-th most recent snapshot.
func (h *History) at(i int) Snapshot {
	return h.buffer[(h.head-1-i+2*len(h.buffer))%len(h.buffer)]
}
