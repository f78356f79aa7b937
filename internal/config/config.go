package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Vec3 is a YAML-friendly [x, y, z] triple.
type Vec3 [3]float32

// Pose is the fixed placement applied to an actor once its model loads.
type Pose struct {
	Asset    string  `yaml:"asset"`
	Scale    float32 `yaml:"scale"`
	Position Vec3    `yaml:"position"`
	Rotation Vec3    `yaml:"rotation"` // Euler XYZ, radians
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraConfig struct {
	Fov    float32 `yaml:"fov"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
	ViewA  Vec3    `yaml:"viewA"`
	ViewB  Vec3    `yaml:"viewB"`
	Target Vec3    `yaml:"target"`
}

type SunConfig struct {
	Elevation     float32 `yaml:"elevation"`     // degrees above horizon at start
	Azimuth       float32 `yaml:"azimuth"`       // degrees
	Floor         float32 `yaml:"floor"`         // elevation at which the sun is considered set
	StepPerFrame  float32 `yaml:"stepPerFrame"`  // degrees removed each frame
	Turbidity     float32 `yaml:"turbidity"`
	Rayleigh      float32 `yaml:"rayleigh"`
	MieCoeff      float32 `yaml:"mieCoefficient"`
	MieDirectionG float32 `yaml:"mieDirectionalG"`
}

type WaterConfig struct {
	Size            float32 `yaml:"size"`
	TextureWidth    int     `yaml:"textureWidth"`
	TextureHeight   int     `yaml:"textureHeight"`
	NormalMap       string  `yaml:"normalMap"`
	SunColor        uint32  `yaml:"sunColor"`
	WaterColor      uint32  `yaml:"waterColor"`
	DistortionScale float32 `yaml:"distortionScale"`
	TimeStep        float32 `yaml:"timeStep"` // added to the time uniform every frame
	Seed            int64   `yaml:"seed"`
}

type RigConfig struct {
	Pose         Pose    `yaml:"pose"`
	BiteMinMs    int     `yaml:"biteMinMs"`
	BiteSpanMs   int     `yaml:"biteSpanMs"`
	BiteMs       int     `yaml:"biteMs"`
	HideAfterMs  int     `yaml:"hideAfterMs"`
	TiltStep     float32 `yaml:"tiltStep"`
	MaxTilt      float32 `yaml:"maxTilt"`
	PullStrength float32 `yaml:"pullStrength"`
	MaxPitch     float32 `yaml:"maxPitch"`
	Seed         int64   `yaml:"seed"` // 0 picks a time-based seed
}

type FishConfig struct {
	Pose        Pose    `yaml:"pose"`
	TargetScale float32 `yaml:"targetScale"`
	StartDepth  float32 `yaml:"startDepth"`
	Rate        float32 `yaml:"rate"` // scale units per second; depth advances at the same rate
}

// Config is the full scene configuration.
type Config struct {
	AssetsDir string       `yaml:"assetsDir"`
	Window    WindowConfig `yaml:"window"`
	Camera    CameraConfig `yaml:"camera"`
	Sun       SunConfig    `yaml:"sun"`
	Water     WaterConfig  `yaml:"water"`
	Rig       RigConfig    `yaml:"rig"`
	Boat      Pose         `yaml:"boat"`
	Bystander Pose         `yaml:"bystander"`
	Fish      FishConfig   `yaml:"fish"`
}

// Default returns the scene as it ships.
func Default() *Config {
	return &Config{
		AssetsDir: "assets",
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Gopher Fishing",
		},
		Camera: CameraConfig{
			Fov:    50,
			Near:   1,
			Far:    20000,
			ViewA:  Vec3{0, 5, -3},
			ViewB:  Vec3{0, 9, 22},
			Target: Vec3{0, 5, -12}, // the rod
		},
		Sun: SunConfig{
			Elevation:     2,
			Azimuth:       180,
			Floor:         0,
			StepPerFrame:  0.001,
			Turbidity:     10,
			Rayleigh:      2,
			MieCoeff:      0.005,
			MieDirectionG: 0.8,
		},
		Water: WaterConfig{
			Size:            10000,
			TextureWidth:    512,
			TextureHeight:   512,
			NormalMap:       "waternormals.jpg",
			SunColor:        0xffffff,
			WaterColor:      0x001e0f,
			DistortionScale: 3.7,
			TimeStep:        0.008 / 60.0,
		},
		Rig: RigConfig{
			Pose: Pose{
				Asset:    "fishing",
				Scale:    0.01,
				Position: Vec3{0, 5, -12},
				Rotation: Vec3{0, math.Pi / 2, math.Pi / 8},
			},
			BiteMinMs:    2000,
			BiteSpanMs:   3000,
			BiteMs:       2000,
			HideAfterMs:  1000,
			TiltStep:     math.Pi / 180,
			MaxTilt:      math.Pi / 12,
			PullStrength: 0.03,
			MaxPitch:     math.Pi / 18,
		},
		Boat: Pose{
			Asset:    "boat",
			Scale:    3,
			Position: Vec3{0, 0, 0},
			Rotation: Vec3{0, math.Pi, 0},
		},
		Bystander: Pose{
			Asset:    "bunny",
			Scale:    1,
			Position: Vec3{0, 4, -2},
			Rotation: Vec3{0, math.Pi, 0},
		},
		Fish: FishConfig{
			Pose: Pose{
				Asset:    "fish",
				Scale:    2,
				Position: Vec3{0, 6, -5},
				Rotation: Vec3{0, math.Pi / 2, 0},
			},
			TargetScale: 3,
			StartDepth:  -10,
			Rate:        6,
		},
	}
}

// Load reads a YAML file on top of Default. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values that would break the controllers' invariants.
func (c *Config) Validate() error {
	var errs []error
	if c.Sun.StepPerFrame <= 0 {
		errs = append(errs, errors.New("sun.stepPerFrame must be positive"))
	}
	if c.Sun.Floor > c.Sun.Elevation {
		errs = append(errs, errors.New("sun.floor must not exceed sun.elevation"))
	}
	if c.Rig.BiteMinMs < 0 || c.Rig.BiteSpanMs < 0 {
		errs = append(errs, errors.New("rig bite delays must not be negative"))
	}
	if c.Rig.BiteMs <= 0 {
		errs = append(errs, errors.New("rig.biteMs must be positive"))
	}
	if c.Rig.HideAfterMs <= 0 {
		errs = append(errs, errors.New("rig.hideAfterMs must be positive"))
	}
	if c.Rig.TiltStep <= 0 || c.Rig.MaxTilt <= 0 {
		errs = append(errs, errors.New("rig tilt step and bound must be positive"))
	}
	if c.Rig.PullStrength <= 0 || c.Rig.MaxPitch <= 0 {
		errs = append(errs, errors.New("rig pitch step and bound must be positive"))
	}
	if c.Fish.TargetScale <= 0 || c.Fish.Rate <= 0 {
		errs = append(errs, errors.New("fish target scale and rate must be positive"))
	}
	return errors.Join(errs...)
}
