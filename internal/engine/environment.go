package engine

import (
	"image"
	"image/color"

	"GopherFishing/internal/environment"
	"GopherFishing/internal/logger"
	"GopherFishing/internal/sky"

	"github.com/g3n/engine/core"
	"github.com/g3n/engine/geometry"
	"github.com/g3n/engine/graphic"
	"github.com/g3n/engine/light"
	"github.com/g3n/engine/material"
	"github.com/g3n/engine/math32"
	"github.com/g3n/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	gradientHeight = 64
	sunDistance    = 1000
)

// skyDome is the inside-out sphere showing the baked sky, plus the lights
// that the baked probe drives.
type skyDome struct {
	mesh     *graphic.Mesh
	mat      *material.Standard
	sun      *light.Directional
	ambient  *light.Ambient
	attached *texture.Texture2D
}

func newSkyDome(scene *core.Node, size float32) *skyDome {
	d := &skyDome{
		mat:     material.NewStandard(math32.NewColor("white")),
		sun:     light.NewDirectional(math32.NewColor("white"), 1.0),
		ambient: light.NewAmbient(math32.NewColor("white"), 0.5),
	}
	d.mat.SetSide(material.SideBack)
	d.mat.SetUseLights(material.UseLightNone)
	d.mat.SetEmissiveColor(math32.NewColor("white"))

	d.mesh = graphic.NewMesh(geometry.NewSphere(float64(size/2), 32, 16), d.mat)
	scene.Add(d.mesh)
	scene.Add(d.sun)
	scene.Add(d.ambient)
	return d
}

// envMap is a baked sky gradient uploaded as a texture.
type envMap struct {
	probe sky.Probe
	sun   mgl32.Vec3
	tex   *texture.Texture2D
}

func (m *envMap) Dispose() {
	if m.tex != nil {
		m.tex.Dispose()
		m.tex = nil
	}
}

// Bake implements environment.Baker.
func (e *Engine) Bake(u sky.Uniforms) environment.Map {
	probe := sky.Sample(u)
	return &envMap{
		probe: probe,
		sun:   u.SunPosition,
		tex:   texture.NewTexture2DFromRGBA(SkyGradient(probe, gradientHeight)),
	}
}

// SetEnvironment implements environment.Target.
func (e *Engine) SetEnvironment(m environment.Map) {
	env, ok := m.(*envMap)
	if !ok {
		logger.Log.Warn("Unexpected environment map type")
		return
	}
	d := e.sky
	if d.attached != nil {
		d.mat.RemoveTexture(d.attached)
	}
	d.attached = env.tex
	d.mat.AddTexture(env.tex)

	p := env.probe
	d.sun.SetColor(vecColor(p.SunColor))
	d.sun.SetIntensity(p.SunIntensity)
	dir := env.sun.Mul(sunDistance)
	d.sun.SetPosition(dir.X(), dir.Y(), dir.Z())
	d.ambient.SetColor(vecColor(p.Horizon))
	d.ambient.SetIntensity(p.AmbientIntensity)

	e.app.Gls().ClearColor(p.Horizon.X(), p.Horizon.Y(), p.Horizon.Z(), 1)
	SetWindowBorderColor(p.Horizon.X(), p.Horizon.Y(), p.Horizon.Z())
	e.water.tint(p)

	logger.Log.Debug("Environment updated", zap.Float32("sunIntensity", p.SunIntensity))
}

// SkyGradient renders the probe as a vertical strip: zenith at the top
// row, horizon at the bottom.
func SkyGradient(p sky.Probe, height int) *image.RGBA {
	if height < 2 {
		height = 2
	}
	img := image.NewRGBA(image.Rect(0, 0, 1, height))
	for y := 0; y < height; y++ {
		t := float32(y) / float32(height-1)
		c := p.Zenith.Add(p.Horizon.Sub(p.Zenith).Mul(t))
		img.SetRGBA(0, y, toRGBA(c))
	}
	return img
}

func toRGBA(c mgl32.Vec3) color.RGBA {
	return color.RGBA{
		R: uint8(mgl32.Clamp(c.X(), 0, 1) * 255),
		G: uint8(mgl32.Clamp(c.Y(), 0, 1) * 255),
		B: uint8(mgl32.Clamp(c.Z(), 0, 1) * 255),
		A: 255,
	}
}

func vecColor(c mgl32.Vec3) *math32.Color {
	return &math32.Color{R: c.X(), G: c.Y(), B: c.Z()}
}
