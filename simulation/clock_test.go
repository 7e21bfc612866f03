package simulation

import (
	"testing"
	"time"
)

func TestClock(t *testing.T) {
	c := NewClock(64)
	if c.Delta() != 15625*time.Microsecond {
		t.Fatalf("unexpected delta %v", c.Delta())
	}
	for i := 0; i < 3; i++ {
		if d := c.Advance(); d != c.Delta() {
			t.Fatalf("expected every tick to advance by %v, got %v", c.Delta(), d)
		}
	}
	if c.Tick() != 3 || c.Elapsed() != 3*c.Delta() {
		t.Fatalf("unexpected clock state: tick=%d elapsed=%v", c.Tick(), c.Elapsed())
	}
}

func TestStageString(t *testing.T) {
	if StagePrepare.String() != "prepare" || StageMove.String() != "move" || Stage(9).String() != "stage(9)" {
		t.Fatalf("unexpected stage names")
	}
}
