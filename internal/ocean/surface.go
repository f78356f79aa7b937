// Package ocean holds the animated water surface: the uniforms the water
// material reads every frame and the scroll layers that move its normal map.
package ocean

import (
	"math"

	"GopherFishing/internal/behaviour"
	"GopherFishing/internal/config"

	perlin "github.com/aquilax/go-perlin"
	mgl32 "github.com/go-gl/mathgl/mgl32"
)

const (
	// ScrollLayers is the number of normal-map layers scrolled across the surface
	ScrollLayers = 2
	// swellAmount bounds how far Perlin swell moves the distortion scale
	swellAmount = 0.15
	// swellFrequency converts the time uniform into noise input; the time
	// uniform moves slowly, so this is large
	swellFrequency = 90
	// swellDrift is how far, in texture units, swell pushes the scroll layers
	swellDrift = 0.02
)

// Uniforms mirror the parameters of the water material.
type Uniforms struct {
	Time            float32
	SunDirection    mgl32.Vec3
	SunColor        mgl32.Vec3
	WaterColor      mgl32.Vec3
	DistortionScale float32
	Size            float32
	TextureWidth    int
	TextureHeight   int
}

// Wave is one scroll layer of the normal map.
type Wave struct {
	Direction mgl32.Vec2
	Speed     float32 // texture units per time unit
	Phase     float32
}

// Surface advances the water animation once per frame.
type Surface struct {
	behaviour.BaseComponent

	Uniforms  Uniforms
	Waves     [ScrollLayers]Wave
	NormalMap string
	TimeStep  float32
	Swell     float32 // current Perlin swell in [-1, 1]

	baseDistortion float32
	noise          *perlin.Perlin
}

// NewSurface builds the water surface from configuration.
func NewSurface(cfg config.WaterConfig) *Surface {
	s := &Surface{
		Uniforms: Uniforms{
			SunDirection:    mgl32.Vec3{0, 1, 0},
			SunColor:        HexColor(cfg.SunColor),
			WaterColor:      HexColor(cfg.WaterColor),
			DistortionScale: cfg.DistortionScale,
			Size:            cfg.Size,
			TextureWidth:    cfg.TextureWidth,
			TextureHeight:   cfg.TextureHeight,
		},
		NormalMap:      cfg.NormalMap,
		TimeStep:       cfg.TimeStep,
		baseDistortion: cfg.DistortionScale,
		noise:          perlin.NewPerlin(2, 2, 3, cfg.Seed),
	}

	// Two layers crossing at 45 degrees, the second slower and offset
	for i := 0; i < ScrollLayers; i++ {
		angle := float64(i) * 45.0 * math.Pi / 180.0
		s.Waves[i] = Wave{
			Direction: mgl32.Vec2{float32(math.Cos(angle)), float32(math.Sin(angle))}.Normalize(),
			Speed:     float32(1.0 / (1.0 + float64(i))),
			Phase:     float32(i) * math.Pi / 3.0,
		}
	}
	return s
}

// Update implements behaviour.Component.
func (s *Surface) Update() {
	s.Step()
}

// Step advances the time uniform by one frame and applies swell.
func (s *Surface) Step() {
	s.Uniforms.Time += s.TimeStep
	s.Swell = mgl32.Clamp(float32(s.noise.Noise1D(float64(s.Uniforms.Time)*swellFrequency)), -1, 1)
	s.Uniforms.DistortionScale = s.baseDistortion * (1 + s.Swell*swellAmount)
}

// SetSunDirection stores the normalized sun direction.
func (s *Surface) SetSunDirection(dir mgl32.Vec3) {
	if dir.Len() < 1e-6 {
		return
	}
	s.Uniforms.SunDirection = dir.Normalize()
}

// ScrollOffset returns the normal-map texture offset for layer i at the
// current time, wrapped to [0, 1). Swell pushes each layer a little along
// its direction.
func (s *Surface) ScrollOffset(i int) mgl32.Vec2 {
	w := s.Waves[i]
	d := s.Uniforms.Time*w.Speed + w.Phase + s.Swell*swellDrift
	return mgl32.Vec2{wrap(w.Direction.X() * d), wrap(w.Direction.Y() * d)}
}

// HexColor converts 0xRRGGBB to a colour vector.
func HexColor(hex uint32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32((hex>>16)&0xff) / 255,
		float32((hex>>8)&0xff) / 255,
		float32(hex&0xff) / 255,
	}
}

func wrap(v float32) float32 {
	f := float32(math.Mod(float64(v), 1))
	if f < 0 {
		f++
	}
	if f >= 1 {
		f = 0
	}
	return f
}
