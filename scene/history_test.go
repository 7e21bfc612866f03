package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestHistoryWraps(t *testing.T) {
	h := NewHistory(4)
	for i := uint64(1); i <= 6; i++ {
		h.Add(Snapshot{Tick: i, Position: mgl32.Vec3{float32(i), 0, 0}})
	}
	if h.Len() != 4 || h.Cap() != 4 {
		t.Fatalf("expected a full history of 4, got len=%d cap=%d", h.Len(), h.Cap())
	}
	if latest, ok := h.Latest(); !ok || latest.Tick != 6 {
		t.Fatalf("expected latest tick 6, got %v (%v)", latest, ok)
	}
	if _, ok := h.Get(2); ok {
		t.Fatalf("expected tick 2 to be overwritten")
	}
	if s, ok := h.Get(3); !ok || s.Position.X() != 3 {
		t.Fatalf("expected tick 3 to be kept, got %v (%v)", s, ok)
	}

	r := h.Range(4, 5)
	if len(r) != 2 || r[0].Tick != 4 || r[1].Tick != 5 {
		t.Fatalf("expected ticks 4 and 5 in order, got %v", r)
	}

	h.Clear()
	if _, ok := h.Latest(); ok || h.Len() != 0 {
		t.Fatalf("expected an empty history after clearing")
	}
}
