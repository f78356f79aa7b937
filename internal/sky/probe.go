package sky

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Probe is a coarse sample of the sky used as image-based lighting for the
// rest of the scene.
type Probe struct {
	Zenith           mgl32.Vec3
	Horizon          mgl32.Vec3
	SunColor         mgl32.Vec3
	SunIntensity     float32
	AmbientIntensity float32
}

type keyframe struct {
	elevation float32 // degrees
	zenith    mgl32.Vec3
	horizon   mgl32.Vec3
	sun       mgl32.Vec3
	intensity float32
	ambient   float32
}

// keyframes are ordered by descending elevation.
var keyframes = []keyframe{
	{
		elevation: 30,
		zenith:    mgl32.Vec3{0.20, 0.42, 0.90},
		horizon:   mgl32.Vec3{0.58, 0.75, 0.95},
		sun:       mgl32.Vec3{1.00, 0.98, 0.92},
		intensity: 1.2,
		ambient:   0.6,
	},
	{
		elevation: 6,
		zenith:    mgl32.Vec3{0.14, 0.20, 0.60},
		horizon:   mgl32.Vec3{0.90, 0.52, 0.18},
		sun:       mgl32.Vec3{1.00, 0.65, 0.25},
		intensity: 0.9,
		ambient:   0.45,
	},
	{
		elevation: 0,
		zenith:    mgl32.Vec3{0.08, 0.10, 0.28},
		horizon:   mgl32.Vec3{0.50, 0.22, 0.28},
		sun:       mgl32.Vec3{0.70, 0.40, 0.55},
		intensity: 0.25,
		ambient:   0.25,
	},
	{
		elevation: -6,
		zenith:    mgl32.Vec3{0.02, 0.03, 0.10},
		horizon:   mgl32.Vec3{0.04, 0.04, 0.08},
		sun:       mgl32.Vec3{0.40, 0.45, 0.65},
		intensity: 0.05,
		ambient:   0.1,
	},
}

// Sample bakes the sky described by u into a Probe. Turbidity pushes the
// zenith towards the horizon colour; rayleigh deepens the zenith blue.
func Sample(u Uniforms) Probe {
	elev := u.SunElevation()

	a, b, t := bracket(elev)
	p := Probe{
		Zenith:           lerp3(a.zenith, b.zenith, t),
		Horizon:          lerp3(a.horizon, b.horizon, t),
		SunColor:         lerp3(a.sun, b.sun, t),
		SunIntensity:     mgl32.Clamp(a.intensity+(b.intensity-a.intensity)*t, 0, 2),
		AmbientIntensity: mgl32.Clamp(a.ambient+(b.ambient-a.ambient)*t, 0, 1),
	}

	haze := mgl32.Clamp(u.Turbidity/20, 0, 1) * 0.5
	p.Zenith = lerp3(p.Zenith, p.Horizon, haze)

	blue := mgl32.Clamp(u.Rayleigh/4, 0, 1) * 0.2
	p.Zenith = mgl32.Vec3{
		p.Zenith.X() * (1 - blue),
		p.Zenith.Y() * (1 - blue/2),
		mgl32.Clamp(p.Zenith.Z()*(1+blue), 0, 1),
	}

	// A tight mie lobe brightens the sun disc slightly.
	p.SunIntensity *= 1 + u.MieDirectionalG*float32(math.Min(float64(u.MieCoefficient)*20, 0.25))
	return p
}

func bracket(elev float32) (keyframe, keyframe, float32) {
	first, last := keyframes[0], keyframes[len(keyframes)-1]
	if elev >= first.elevation {
		return first, first, 0
	}
	if elev <= last.elevation {
		return last, last, 0
	}
	for i := 0; i < len(keyframes)-1; i++ {
		hi, lo := keyframes[i], keyframes[i+1]
		if elev <= hi.elevation && elev >= lo.elevation {
			return hi, lo, (hi.elevation - elev) / (hi.elevation - lo.elevation)
		}
	}
	return last, last, 0
}

func lerp3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
