// Package sky models the sun and the atmospheric scattering parameters fed
// to the sky dome, plus a coarse colour sample of the resulting sky used to
// light the rest of the scene.
package sky

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SunParameters place the sun on the sky sphere, in degrees.
type SunParameters struct {
	Elevation float32
	Azimuth   float32
}

// Direction converts the sun parameters to a unit vector using the
// spherical convention of the sky shader: polar angle measured from +Y,
// azimuth measured from +Z towards +X.
func (p SunParameters) Direction() mgl32.Vec3 {
	phi := mgl32.DegToRad(90 - p.Elevation)
	theta := mgl32.DegToRad(p.Azimuth)
	return FromSpherical(1, phi, theta)
}

// FromSpherical returns the Cartesian point for radius r, polar angle phi
// and azimuthal angle theta.
func FromSpherical(r, phi, theta float32) mgl32.Vec3 {
	sinPhi := float32(math.Sin(float64(phi)))
	return mgl32.Vec3{
		r * sinPhi * float32(math.Sin(float64(theta))),
		r * float32(math.Cos(float64(phi))),
		r * sinPhi * float32(math.Cos(float64(theta))),
	}
}

// Uniforms are the inputs of the atmospheric scattering model.
type Uniforms struct {
	Turbidity       float32
	Rayleigh        float32
	MieCoefficient  float32
	MieDirectionalG float32
	SunPosition     mgl32.Vec3
}

// DefaultUniforms match a hazy late-afternoon sky.
func DefaultUniforms() Uniforms {
	return Uniforms{
		Turbidity:       10,
		Rayleigh:        2,
		MieCoefficient:  0.005,
		MieDirectionalG: 0.8,
		SunPosition:     mgl32.Vec3{0, 1, 0},
	}
}

// SunElevation returns the sun's height above the horizon in degrees.
func (u Uniforms) SunElevation() float32 {
	dir := u.SunPosition
	if dir.Len() == 0 {
		return 90
	}
	y := dir.Normalize().Y()
	return mgl32.RadToDeg(float32(math.Asin(float64(mgl32.Clamp(y, -1, 1)))))
}
