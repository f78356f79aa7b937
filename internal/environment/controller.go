// Package environment moves the sun towards the horizon and keeps the sky,
// the water and the scene lighting consistent with it.
package environment

import (
	"GopherFishing/internal/behaviour"
	"GopherFishing/internal/config"
	"GopherFishing/internal/logger"
	"GopherFishing/internal/ocean"
	"GopherFishing/internal/sky"

	"go.uber.org/zap"
)

// Map is a baked environment lighting resource. Dispose releases it.
type Map interface {
	Dispose()
}

// Baker turns the current sky state into an environment map.
type Baker interface {
	Bake(sky.Uniforms) Map
}

// Target receives each new environment map. The controller owns the maps;
// the target must not dispose them.
type Target interface {
	SetEnvironment(Map)
}

// SunsetListener is told once that the sun has reached its floor.
type SunsetListener interface {
	OnSunset()
}

// Controller is driven once per frame through Update.
type Controller struct {
	behaviour.BaseComponent

	Sun   sky.SunParameters
	Sky   sky.Uniforms
	Water *ocean.Surface

	floor    float32
	step     float32
	baker    Baker
	target   Target
	listener SunsetListener

	current Map
	sunset  bool
}

func NewController(cfg config.SunConfig, water *ocean.Surface, baker Baker, target Target, listener SunsetListener) *Controller {
	return &Controller{
		Sun: sky.SunParameters{Elevation: cfg.Elevation, Azimuth: cfg.Azimuth},
		Sky: sky.Uniforms{
			Turbidity:       cfg.Turbidity,
			Rayleigh:        cfg.Rayleigh,
			MieCoefficient:  cfg.MieCoeff,
			MieDirectionalG: cfg.MieDirectionG,
		},
		Water:    water,
		floor:    cfg.Floor,
		step:     cfg.StepPerFrame,
		baker:    baker,
		target:   target,
		listener: listener,
	}
}

// Start applies the initial sun position before the first frame.
func (c *Controller) Start() {
	c.apply()
	logger.Log.Debug("Environment initialized",
		zap.Float32("elevation", c.Sun.Elevation),
		zap.Float32("azimuth", c.Sun.Azimuth))
}

// Update implements behaviour.Component.
func (c *Controller) Update() {
	c.Advance()
}

// Advance lowers the sun by one step, never below the floor, then refreshes
// the sky, the water and the environment map.
func (c *Controller) Advance() {
	if c.Sun.Elevation > c.floor {
		c.Sun.Elevation -= c.step
		if c.Sun.Elevation < c.floor {
			c.Sun.Elevation = c.floor
		}
	}

	c.apply()

	if !c.sunset && c.Sun.Elevation <= c.floor {
		c.sunset = true
		logger.Log.Info("Sunset reached", zap.Float32("elevation", c.Sun.Elevation))
		if c.listener != nil {
			c.listener.OnSunset()
		}
	}
}

// SunsetReached reports whether the sunset notification has fired.
func (c *Controller) SunsetReached() bool {
	return c.sunset
}

// Environment returns the map currently installed on the target.
func (c *Controller) Environment() Map {
	return c.current
}

// Close releases the last environment map.
func (c *Controller) Close() {
	if c.current != nil {
		c.current.Dispose()
		c.current = nil
	}
}

// OnDestroy implements behaviour.Component.
func (c *Controller) OnDestroy() {
	c.Close()
}

func (c *Controller) apply() {
	dir := c.Sun.Direction()
	c.Sky.SunPosition = dir
	if c.Water != nil {
		c.Water.SetSunDirection(dir)
	}

	if c.baker == nil {
		return
	}
	if c.current != nil {
		c.current.Dispose()
	}
	c.current = c.baker.Bake(c.Sky)
	if c.target != nil {
		c.target.SetEnvironment(c.current)
	}
}
