// Package session holds the state of one play session: the catch counter,
// the camera viewpoint and the HUD that displays them.
package session

import (
	"fmt"

	"GopherFishing/internal/camera"
	"GopherFishing/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// SunsetMessage is shown once the sun has set.
const SunsetMessage = "The sun has set. Thanks for fishing!"

// HUD is the on-screen text surface.
type HUD interface {
	SetCatchText(text string)
	ShowBanner(text string)
}

// CameraListener is told when the camera moved.
type CameraListener interface {
	MoveCamera(cam *camera.Camera)
}

// Session is not safe for concurrent use; it lives on the frame thread.
type Session struct {
	Camera *camera.Camera

	hud         HUD
	cameraSink  CameraListener
	catches     int
	sunsetShown bool
}

func New(cam *camera.Camera, hud HUD, sink CameraListener) *Session {
	s := &Session{
		Camera:     cam,
		hud:        hud,
		cameraSink: sink,
	}
	if hud != nil {
		hud.SetCatchText(CatchText(0))
	}
	return s
}

// CatchText formats the counter line.
func CatchText(n int) string {
	return fmt.Sprintf("Fish caught: %d", n)
}

// RecordCatch increments the counter and refreshes the HUD.
func (s *Session) RecordCatch() int {
	s.catches++
	if s.hud != nil {
		s.hud.SetCatchText(CatchText(s.catches))
	}
	logger.Log.Info("Fish caught", zap.Int("total", s.catches))
	return s.catches
}

func (s *Session) Catches() int {
	return s.catches
}

// ToggleCameraView flips between the two viewpoints.
func (s *Session) ToggleCameraView() mgl32.Vec3 {
	pos := s.Camera.Toggle()
	if s.cameraSink != nil {
		s.cameraSink.MoveCamera(s.Camera)
	}
	logger.Log.Debug("Camera view toggled", zap.Bool("alternate", s.Camera.Alternate()))
	return pos
}

// OnSunset shows the end-of-session banner. Repeated calls are ignored.
func (s *Session) OnSunset() {
	if s.sunsetShown {
		return
	}
	s.sunsetShown = true
	if s.hud != nil {
		s.hud.ShowBanner(SunsetMessage)
	}
}

func (s *Session) SunsetShown() bool {
	return s.sunsetShown
}
