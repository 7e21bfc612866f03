package scene

import "github.com/oomph-ac/puppeteer/omath"

// statsWindow is the amount of recent solves bounce statistics are computed over.
const statsWindow = 4096

// Stats summarises the work done by the solver for every puppet in the scene.
type Stats struct {
	// MeanBounces and StdDevBounces describe the amount of surfaces hit per solve over the most
	// recent solves.
	MeanBounces   float64
	StdDevBounces float64

	// Solves is the total amount of puppet ticks resolved.
	Solves uint64
	// Steps is the total amount of steps climbed.
	Steps uint64
	// CappedSolves is the total amount of solves cut short by the bounce limit.
	CappedSolves uint64
	// FailedSolves is the total amount of puppet ticks that panicked. The input and state of the puppet
	// are restored to what they were before such a tick.
	FailedSolves uint64
}

type statsRecorder struct {
	bounces []float64
	next    int

	stats Stats
}

func (r *statsRecorder) addBounces(n int) {
	if len(r.bounces) < statsWindow {
		r.bounces = append(r.bounces, float64(n))
		return
	}
	r.bounces[r.next] = float64(n)
	r.next = (r.next + 1) % statsWindow
}

func (r *statsRecorder) snapshot() Stats {
	s := r.stats
	s.MeanBounces = omath.Mean(r.bounces)
	s.StdDevBounces = omath.StandardDeviation(r.bounces)
	return s
}
