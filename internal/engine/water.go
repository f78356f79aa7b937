package engine

import (
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"

	"GopherFishing/internal/config"
	"GopherFishing/internal/logger"
	"GopherFishing/internal/ocean"
	"GopherFishing/internal/sky"

	"github.com/g3n/engine/core"
	"github.com/g3n/engine/geometry"
	"github.com/g3n/engine/gls"
	"github.com/g3n/engine/graphic"
	"github.com/g3n/engine/material"
	"github.com/g3n/engine/math32"
	"github.com/g3n/engine/texture"
	"go.uber.org/zap"
)

// normalRepeat is how many times the first normal-map layer tiles across
// the ocean; each further layer tiles more coarsely.
const normalRepeat = 200

type waterSurface struct {
	mesh   *graphic.Mesh
	mat    *material.Standard
	layers [ocean.ScrollLayers]*texture.Texture2D
	base   *math32.Color
}

func newWaterSurface(scene *core.Node, assetsDir string, cfg config.WaterConfig) *waterSurface {
	base := vecColor(ocean.HexColor(cfg.WaterColor))
	w := &waterSurface{
		mat:  material.NewStandard(base),
		base: base,
	}
	w.mat.SetSide(material.SideDouble)
	w.mat.SetShininess(waterShininess(cfg.DistortionScale))
	w.mat.SetSpecularColor(vecColor(ocean.HexColor(cfg.SunColor)))

	path := filepath.Join(assetsDir, cfg.NormalMap)
	for i := range w.layers {
		tex, err := texture.NewTexture2DFromImage(path)
		if err != nil {
			logger.Log.Warn("Failed to load water normals", zap.String("path", path), zap.Error(err))
			break
		}
		repeat := float32(normalRepeat) / float32(i+1)
		tex.SetWrapS(gls.REPEAT)
		tex.SetWrapT(gls.REPEAT)
		tex.SetRepeat(repeat, repeat)
		w.layers[i] = tex
		w.mat.AddTexture(tex)
	}

	w.mesh = graphic.NewMesh(geometry.NewPlane(cfg.Size, cfg.Size), w.mat)
	w.mesh.SetRotationX(-math32.Pi / 2)
	scene.Add(w.mesh)
	return w
}

// update scrolls each normal-map layer and follows the swell with the
// specular highlight.
func (w *waterSurface) update(s *ocean.Surface) {
	for i, tex := range w.layers {
		if tex == nil {
			continue
		}
		off := s.ScrollOffset(i)
		tex.SetOffset(off.X(), off.Y())
	}
	w.mat.SetShininess(waterShininess(s.Uniforms.DistortionScale))
}

// waterShininess maps distortion to a specular exponent: a rougher surface
// gives a broader, dimmer highlight.
func waterShininess(distortion float32) float32 {
	if distortion < 0 {
		distortion = 0
	}
	return 240 / (1 + distortion)
}

// tint darkens the water along with the sky.
func (w *waterSurface) tint(p sky.Probe) {
	k := 0.5 + p.AmbientIntensity
	w.mat.SetColor(&math32.Color{R: w.base.R * k, G: w.base.G * k, B: w.base.B * k})
}

func (w *waterSurface) dispose() {
	for _, tex := range w.layers {
		if tex != nil {
			tex.Dispose()
		}
	}
}
