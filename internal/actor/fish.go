package actor

import (
	"time"

	"GopherFishing/internal/behaviour"
	"GopherFishing/internal/clock"
	"GopherFishing/internal/config"
	"GopherFishing/internal/logger"
)

// Fish pops out of the water when caught. The reveal grows the fish from
// nothing while it swims towards the camera; Update samples it every frame.
type Fish struct {
	*Actor
	behaviour.BaseComponent

	clock       clock.Scheduler
	targetScale float32
	startDepth  float32
	rate        float32

	caught    bool
	revealing bool
	startedAt time.Duration
}

func NewFish(loader ModelLoader, cfg config.FishConfig, sched clock.Scheduler) *Fish {
	f := &Fish{
		Actor:       newActor("Fish", cfg.Pose),
		clock:       sched,
		targetScale: cfg.TargetScale,
		startDepth:  cfg.StartDepth,
		rate:        cfg.Rate,
	}
	f.Object.AddComponent(f)
	f.load(loader, nil, func() {
		f.Object.Transform.SetVisible(false)
	})
	return f
}

// Reveal shows the fish and restarts the grow-in.
func (f *Fish) Reveal() {
	if !f.Loaded() {
		return
	}
	f.caught = true
	f.revealing = true
	f.startedAt = f.clock.Now()

	t := f.Object.Transform
	t.SetVisible(true)
	f.sample(0)
	logger.Log.Info("Fish revealed")
}

// Hide makes the fish invisible at once and stops any reveal in progress.
func (f *Fish) Hide() {
	if !f.Loaded() {
		return
	}
	f.caught = false
	f.revealing = false
	f.Object.Transform.SetVisible(false)
	logger.Log.Debug("Fish hidden")
}

// Update implements behaviour.Component.
func (f *Fish) Update() {
	if !f.revealing {
		return
	}
	grown := f.rate * float32((f.clock.Now() - f.startedAt).Seconds())
	if grown >= f.targetScale {
		grown = f.targetScale
		f.revealing = false
	}
	f.sample(grown)
}

func (f *Fish) sample(scale float32) {
	t := f.Object.Transform
	t.SetUniformScale(scale)
	pos := t.Position
	pos[2] = f.startDepth + scale
	t.SetPosition(pos)
}

func (f *Fish) Visible() bool {
	return f.Loaded() && f.Object.Transform.Visible
}

func (f *Fish) Caught() bool {
	return f.caught
}

// Revealing reports whether the grow-in is still running.
func (f *Fish) Revealing() bool {
	return f.revealing
}
