package engine

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"GopherFishing/internal/camera"
	"GopherFishing/internal/config"
	"GopherFishing/internal/game"
	"GopherFishing/internal/logger"

	"github.com/g3n/engine/app"
	g3ncam "github.com/g3n/engine/camera"
	"github.com/g3n/engine/core"
	"github.com/g3n/engine/gls"
	"github.com/g3n/engine/gui"
	"github.com/g3n/engine/math32"
	"github.com/g3n/engine/renderer"
	"github.com/g3n/engine/window"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Engine is the scene host: it owns the window, the scene graph, the
// camera and the render loop, and runs the game one frame at a time.
type Engine struct {
	Width  int
	Height int
	Title  string
	Seed   int64

	cfg     *config.Config
	app     *app.Application
	scene   *core.Node
	camera  *g3ncam.Camera
	sky     *skyDome
	water   *waterSurface
	hud     *hud
	pending chan func()
	game    *game.Game
}

// New prepares an engine; nothing touches the GPU until Run.
func New(cfg *config.Config) *Engine {
	return &Engine{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Title:   cfg.Window.Title,
		Seed:    cfg.Rig.Seed,
		cfg:     cfg,
		pending: make(chan func(), 64),
	}
}

// Run opens the window and blocks until it is closed. Window or GL setup
// failures are returned before the loop starts.
func (e *Engine) Run() error {
	runtime.LockOSThread()
	logger.Log.Info("Fishing scene initializing...")

	if err := guardInit("engine init", e.setup); err != nil {
		logger.Log.Error("Engine initialization failed", zap.Error(err))
		return err
	}

	e.app.Run(e.frame)

	e.game.Close()
	e.water.dispose()
	logger.Log.Info("Fishing scene closed",
		zap.Uint64("frames", e.game.Frames()),
		zap.Int("catches", e.game.Session.Catches()),
		zap.Int("actorsLoaded", e.game.LoadedActors()))
	return nil
}

// setup opens the window and builds the scene. g3n reports window and GL
// failures by panicking.
func (e *Engine) setup() {
	e.app = app.App()
	e.configureWindow()

	e.scene = core.NewNode()
	gui.Manager().Set(e.scene)

	e.camera = g3ncam.NewPerspective(e.aspect(), e.cfg.Camera.Near, e.cfg.Camera.Far, e.cfg.Camera.Fov, g3ncam.Vertical)
	e.scene.Add(e.camera)

	e.sky = newSkyDome(e.scene, e.cfg.Water.Size)
	e.water = newWaterSurface(e.scene, e.cfg.AssetsDir, e.cfg.Water)
	e.hud = newHUD(e.scene, e.Width)

	seed := e.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e.game = game.New(e.cfg, e, rand.New(rand.NewSource(seed)), e.aspect())

	e.app.Subscribe(window.OnWindowSize, e.onResize)
	e.app.Subscribe(window.OnKeyDown, e.onKeyDown)
	e.onResize("", nil)
}

// guardInit runs one init step and converts a panic into an error.
func guardInit(step string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", step, r)
		}
	}()
	fn()
	return nil
}

func (e *Engine) frame(rend *renderer.Renderer, deltaTime time.Duration) {
	e.drain()
	e.game.Frame(deltaTime)
	e.water.update(e.game.Water)

	e.app.Gls().Clear(gls.DEPTH_BUFFER_BIT | gls.STENCIL_BUFFER_BIT | gls.COLOR_BUFFER_BIT)
	if err := rend.Render(e.scene, e.camera); err != nil {
		logger.Log.Error("Render failed", zap.Error(err))
	}
}

// drain runs work posted by background loaders on the frame thread.
func (e *Engine) drain() {
	for {
		select {
		case fn := <-e.pending:
			fn()
		default:
			return
		}
	}
}

func (e *Engine) post(fn func()) {
	e.pending <- fn
}

func (e *Engine) configureWindow() {
	gw, ok := e.app.IWindow.(*window.GlfwWindow)
	if !ok {
		return
	}
	gw.Window.SetTitle(e.Title)
	gw.Window.SetSize(e.Width, e.Height)
	gw.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	SetDarkTitleBar(gw.Window)
}

// MoveCamera implements session.CameraListener by placing the rendering
// camera at the game camera's world transform.
func (e *Engine) MoveCamera(cam *camera.Camera) {
	world := math32.Matrix4(cam.WorldMatrix())
	e.camera.SetMatrix(&world)
}

func (e *Engine) aspect() float32 {
	w, h := e.Width, e.Height
	if e.app != nil {
		w, h = e.app.GetSize()
	}
	if h == 0 {
		return 1
	}
	return float32(w) / float32(h)
}

func (e *Engine) onResize(evname string, ev interface{}) {
	width, height := e.app.GetFramebufferSize()
	e.app.Gls().Viewport(0, 0, int32(width), int32(height))
	e.camera.SetAspect(e.aspect())
	if e.game != nil {
		e.game.Camera.SetAspectRatio(e.aspect())
	}
	e.hud.layout(width)
}

func (e *Engine) onKeyDown(evname string, ev interface{}) {
	kev, ok := ev.(*window.KeyEvent)
	if !ok {
		return
	}
	if kev.Key == window.KeyEscape {
		e.app.Exit()
		return
	}
	if k := translateKey(kev.Key); k != game.KeyNone {
		e.game.HandleKey(k)
	}
}

// translateKey maps arrow keys and space onto game inputs.
func translateKey(k window.Key) game.Key {
	switch k {
	case window.KeyUp:
		return game.KeyCatch
	case window.KeyLeft:
		return game.KeyTiltLeft
	case window.KeyRight:
		return game.KeyTiltRight
	case window.KeySpace:
		return game.KeyToggleView
	default:
		return game.KeyNone
	}
}
