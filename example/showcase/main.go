package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/puppeteer/puppet"
	"github.com/oomph-ac/puppeteer/scene"
	"github.com/oomph-ac/puppeteer/settings"
	"github.com/oomph-ac/puppeteer/simulation"
	"github.com/oomph-ac/puppeteer/world"
	"github.com/sirupsen/logrus"
)

// controller drives the input of a puppet every tick.
type controller func(tick uint64, in *puppet.Input)

// The following program drops a few puppets into a small course and lets scripted controllers walk,
// climb and jump them around.
func main() {
	path, seconds := "puppeteer.toml", 10
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fmt.Println("Usage: ./showcase [settings_path] [seconds]")
			return
		}
		seconds = n
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := settings.SaveDefault(path); err != nil {
			panic(err)
		}
	}
	s, err := settings.Load(path)
	if err != nil {
		panic(err)
	}

	lg := logrus.New()
	lg.Formatter = &logrus.TextFormatter{ForceColors: true}
	if lg.Level, err = s.LogLevel(); err != nil {
		lg.Warnf("%v, falling back to %v", err, lg.Level)
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			lg.Errorf("failed to initialize sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	w := world.New(lg)
	w.AddBox(cube.Box(-20, -1, -20, 20, 0, 20))
	// A short ledge to climb, and a wall that can't be climbed.
	w.AddBox(cube.Box(4, 0, -20, 8, 0.3, 20))
	w.AddBox(cube.Box(12, 0, -20, 13, 3, 20))

	sim := simulation.NewSimulator(w, s.Options())
	sc := scene.New(w, sim, simulation.NewClock(s.Simulation.TickRate), lg)

	controllers := map[puppet.ID]controller{
		1: func(_ uint64, in *puppet.Input) {
			in.SetMoveDirection(mgl32.Vec3{1, 0, 0})
		},
		2: func(tick uint64, in *puppet.Input) {
			if tick%uint64(s.Simulation.TickRate) == 0 {
				in.StartJump()
			}
			if tick%uint64(s.Simulation.TickRate) == uint64(s.Simulation.TickRate/4) {
				in.StopJump()
			}
		},
		3: func(tick uint64, in *puppet.Input) {
			angle := float32(tick) / float32(s.Simulation.TickRate)
			in.SetMoveDirection(mgl32.Vec3{math32.Cos(angle), 0, math32.Sin(angle)})
			in.SetSpeedMultiplier(0.5)
		},
	}
	spawns := map[puppet.ID]mgl32.Vec3{
		1: {0, 2, 0},
		2: {0, 2, 5},
		3: {0, 2, -5},
	}
	for id := puppet.ID(1); id <= 3; id++ {
		p, err := puppet.New(id, s.Capsule(), spawns[id], puppet.WithParams(s.Params()), puppet.WithProfile(s.Profile()))
		if err != nil {
			panic(err)
		}
		if err := sc.Spawn(p); err != nil {
			panic(err)
		}
	}

	start := time.Now()
	ticks := seconds * s.Simulation.TickRate
	for i := 0; i < ticks; i++ {
		tick := sc.Clock().Tick() + 1
		for id, c := range controllers {
			if p, ok := sc.Actor(id); ok {
				c(tick, p.Input())
			}
		}
		sc.Tick()
	}

	for id := puppet.ID(1); id <= 3; id++ {
		p, _ := sc.Actor(id)
		fields := logrus.Fields{"puppet": id, "pos": p.Position(), "grounded": p.Grounded()}
		if clearance, ok := w.Distance(p.Collider(), p.Position()); ok {
			fields["clearance"] = clearance
		}
		if latest, ok := sc.History(id).Latest(); ok {
			fields["lastTick"] = latest.Tick
		}
		lg.WithFields(fields).Info("final state")
	}

	stats := sc.Stats()
	lg.WithFields(logrus.Fields{
		"simulated":     sc.Clock().Elapsed(),
		"took":          time.Since(start),
		"solves":        stats.Solves,
		"meanBounces":   stats.MeanBounces,
		"stdDevBounces": stats.StdDevBounces,
		"steps":         stats.Steps,
		"capped":        stats.CappedSolves,
		"digest":        fmt.Sprintf("%016x", sc.Digest()),
	}).Info("simulation finished")
}
