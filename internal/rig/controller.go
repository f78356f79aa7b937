// Package rig drives the fishing rod: the bite cycle, catching, tilting the
// rod and switching the camera viewpoint.
//
// The bite cycle is a two-state machine with exactly one pending wake-up:
//
//	Idle --(random delay)--> Biting --(bite duration)--> Idle --> ...
//
// A catch ends the bite early but leaves the pending wake-up alone; when it
// fires the machine is already Idle and simply re-arms.
package rig

import (
	"errors"
	"math/rand"
	"time"

	"GopherFishing/internal/actor"
	"GopherFishing/internal/behaviour"
	"GopherFishing/internal/clock"
	"GopherFishing/internal/config"
	"GopherFishing/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// State of the bite cycle.
type State int

const (
	Idle State = iota
	Biting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Biting:
		return "biting"
	default:
		return "unknown"
	}
}

// Direction of a tilt step.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

var ErrUnknownDirection = errors.New("rig: unknown tilt direction")

// Fish is the actor shown on a catch.
type Fish interface {
	Reveal()
	Hide()
}

// Session records catches and owns the camera viewpoint.
type Session interface {
	RecordCatch() int
	ToggleCameraView() mgl32.Vec3
}

// Controller is a component on the rig's pivot object.
type Controller struct {
	behaviour.BaseComponent

	Pivot *behaviour.GameObject
	Rod   *actor.Rod

	clock   clock.Scheduler
	rng     *rand.Rand
	fish    Fish
	session Session

	biteMin   time.Duration
	biteSpan  time.Duration
	biteFor   time.Duration
	hideAfter time.Duration
	tiltStep  float32
	maxTilt   float32
	pull      float32
	maxPitch  float32

	ready    bool
	state    State
	tilt     float32
	pitch    float32
	pitchDir float32
	wake     *clock.Timer
}

// NewController creates the pivot group and requests the rod model. The
// bite cycle starts once the rod has loaded; input before that is dropped.
func NewController(cfg config.RigConfig, loader actor.ModelLoader, sched clock.Scheduler, rng *rand.Rand, fish Fish, sess Session) *Controller {
	c := &Controller{
		Pivot:     behaviour.NewGameObject("FishingRig"),
		clock:     sched,
		rng:       rng,
		fish:      fish,
		session:   sess,
		biteMin:   time.Duration(cfg.BiteMinMs) * time.Millisecond,
		biteSpan:  time.Duration(cfg.BiteSpanMs) * time.Millisecond,
		biteFor:   time.Duration(cfg.BiteMs) * time.Millisecond,
		hideAfter: time.Duration(cfg.HideAfterMs) * time.Millisecond,
		tiltStep:  cfg.TiltStep,
		maxTilt:   cfg.MaxTilt,
		pull:      cfg.PullStrength,
		maxPitch:  cfg.MaxPitch,
		pitchDir:  1,
	}
	c.Pivot.AddComponent(c)

	var pivotNode behaviour.Node
	if loader != nil {
		pivotNode = loader.NewGroup(c.Pivot.Name, nil)
		c.Pivot.SetNode(pivotNode)
	}
	c.Rod = actor.NewRod(loader, cfg.Pose, pivotNode, c.onRodLoaded)
	return c
}

func (c *Controller) onRodLoaded() {
	c.ready = true
	c.arm()
	logger.Log.Info("Fishing rig ready")
}

// arm schedules the next bite after a whole-millisecond delay drawn
// uniformly from [min, min+span].
func (c *Controller) arm() {
	delay := c.biteMin
	if span := int64(c.biteSpan / time.Millisecond); span > 0 {
		delay += time.Duration(c.rng.Int63n(span+1)) * time.Millisecond
	}
	c.wake = c.clock.After(delay, c.openBite)
	logger.Log.Debug("Next bite armed", zap.Duration("in", delay))
}

func (c *Controller) openBite() {
	c.state = Biting
	c.pitchDir = 1
	c.wake = c.clock.After(c.biteFor, c.closeBite)
	logger.Log.Debug("Bite window open")
}

func (c *Controller) closeBite() {
	c.toIdle()
	c.arm()
}

func (c *Controller) toIdle() {
	c.state = Idle
	c.pitch = 0
	c.pitchDir = 1
	if c.Rod.Loaded() {
		c.Rod.SetPitch(0)
	}
}

// AttemptCatch lands the fish if a bite is active. It reports whether the
// catch succeeded; outside a bite it does nothing.
func (c *Controller) AttemptCatch() bool {
	if !c.ready || c.state != Biting {
		return false
	}
	c.toIdle()
	c.session.RecordCatch()
	c.fish.Reveal()
	c.clock.After(c.hideAfter, c.fish.Hide)
	return true
}

// Tilt leans the rig one step left or right. It reports whether the rig
// moved; steps past the tilt bound are ignored.
func (c *Controller) Tilt(dir Direction) (bool, error) {
	if dir != Left && dir != Right {
		return false, ErrUnknownDirection
	}
	if !c.ready {
		return false, nil
	}

	next := mgl32.Clamp(c.tilt+float32(dir)*c.tiltStep, -c.maxTilt, c.maxTilt)
	if next == c.tilt {
		return false, nil
	}
	c.tilt = next

	// Tilting left raises the pivot's Z rotation
	rot := c.Pivot.Transform.Rotation
	rot[2] = -c.tilt
	c.Pivot.Transform.SetRotation(rot)
	return true, nil
}

// ToggleCameraView switches the camera between its two viewpoints.
func (c *Controller) ToggleCameraView() {
	if !c.ready {
		return
	}
	c.session.ToggleCameraView()
}

// Update implements behaviour.Component. While a bite is active the rod
// jerks back and forth between rest and the maximum pitch.
func (c *Controller) Update() {
	if !c.ready || c.state != Biting {
		return
	}

	c.pitch += c.pitchDir * c.pull
	if c.pitch >= c.maxPitch {
		c.pitch = c.maxPitch
		c.pitchDir = -1
	} else if c.pitch <= 0 {
		c.pitch = 0
		c.pitchDir = 1
	}
	c.Rod.SetPitch(c.pitch)
}

// Stop cancels the pending wake-up, ending the bite cycle.
func (c *Controller) Stop() {
	c.wake.Stop()
}

// OnDestroy implements behaviour.Component.
func (c *Controller) OnDestroy() {
	c.Stop()
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Ready() bool {
	return c.ready
}

func (c *Controller) TiltAngle() float32 {
	return c.tilt
}

func (c *Controller) PitchAngle() float32 {
	return c.pitch
}

// NextWake returns the pending wake-up, or nil before the rod loads.
func (c *Controller) NextWake() *clock.Timer {
	return c.wake
}
