// Package game assembles the fishing scene from its parts and runs one
// frame at a time. It knows nothing about windows or GPUs; the scene host
// is reached only through the Host interface.
package game

import (
	"math/rand"
	"time"

	"GopherFishing/internal/actor"
	"GopherFishing/internal/behaviour"
	"GopherFishing/internal/camera"
	"GopherFishing/internal/clock"
	"GopherFishing/internal/config"
	"GopherFishing/internal/environment"
	"GopherFishing/internal/logger"
	"GopherFishing/internal/ocean"
	"GopherFishing/internal/rig"
	"GopherFishing/internal/session"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Key is a game input, already translated from the host's key codes.
type Key int

const (
	KeyNone Key = iota
	KeyCatch
	KeyTiltLeft
	KeyTiltRight
	KeyToggleView
)

// Host is everything the game needs from the scene host.
type Host interface {
	actor.ModelLoader
	environment.Baker
	environment.Target
	session.HUD
	session.CameraListener
}

// Game is one play session. All methods must be called from the frame thread.
type Game struct {
	Clock       *clock.Timeline
	Camera      *camera.Camera
	Session     *session.Session
	Water       *ocean.Surface
	Environment *environment.Controller
	Rig         *rig.Controller
	Boat        *actor.Boat
	Bystander   *actor.Bystander
	Fish        *actor.Fish

	objects *behaviour.ComponentManager
	frames  uint64
}

// New builds the scene. aspect is the initial viewport aspect ratio.
func New(cfg *config.Config, host Host, rng *rand.Rand, aspect float32) *Game {
	g := &Game{
		Clock:   clock.NewTimeline(),
		objects: behaviour.NewComponentManager(),
	}

	cc := cfg.Camera
	g.Camera = camera.New(cc.Fov, cc.Near, cc.Far, aspect,
		mgl32.Vec3(cc.ViewA), mgl32.Vec3(cc.ViewB), mgl32.Vec3(cc.Target))
	g.Session = session.New(g.Camera, host, host)
	host.MoveCamera(g.Camera)

	g.Water = ocean.NewSurface(cfg.Water)
	g.Environment = environment.NewController(cfg.Sun, g.Water, host, host, g.Session)

	env := behaviour.NewGameObject("Environment")
	env.AddComponent(g.Environment)
	env.AddComponent(g.Water)
	g.objects.Register(env)

	g.Boat = actor.NewBoat(host, cfg.Boat)
	g.Bystander = actor.NewBystander(host, cfg.Bystander)
	g.Fish = actor.NewFish(host, cfg.Fish, g.Clock)
	g.Rig = rig.NewController(cfg.Rig, host, g.Clock, rng, g.Fish, g.Session)

	g.objects.Register(g.Rig.Pivot, g.Rig.Rod.Object, g.Boat.Object, g.Bystander.Object, g.Fish.Object)

	logger.Log.Info("Scene assembled",
		zap.Int("objects", g.objects.Len()),
		zap.Float32("sunElevation", cfg.Sun.Elevation))
	return g
}

// Frame runs due timers, then every component, then syncs transforms to
// the host's nodes.
func (g *Game) Frame(dt time.Duration) {
	g.Clock.Advance(dt)
	g.objects.UpdateAll()
	g.frames++
}

// HandleKey routes one key press.
func (g *Game) HandleKey(k Key) {
	switch k {
	case KeyCatch:
		g.Rig.AttemptCatch()
	case KeyTiltLeft:
		g.tilt(rig.Left)
	case KeyTiltRight:
		g.tilt(rig.Right)
	case KeyToggleView:
		g.Rig.ToggleCameraView()
	}
}

func (g *Game) tilt(dir rig.Direction) {
	moved, err := g.Rig.Tilt(dir)
	if err != nil {
		logger.Log.Debug("Tilt rejected", zap.Int("direction", int(dir)), zap.Error(err))
		return
	}
	if !moved {
		logger.Log.Debug("Tilt at bound", zap.Float32("angle", g.Rig.TiltAngle()))
	}
}

// Frames returns the number of frames run so far.
func (g *Game) Frames() uint64 {
	return g.frames
}

// LoadedActors counts the actors whose models have arrived.
func (g *Game) LoadedActors() int {
	n := 0
	for _, obj := range g.objects.Tagged(actor.Tag) {
		if obj.Loaded() {
			n++
		}
	}
	return n
}

// Close stops the bite cycle and releases the environment map.
func (g *Game) Close() {
	g.objects.Clear()
}
