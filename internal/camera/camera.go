// camera.go
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera that switches between two fixed
// viewpoints while always looking at the same target. The host renders
// through it by placing its own camera at the inverse of GetViewMatrix.
type Camera struct {
	Position mgl32.Vec3 // Camera position in world space
	Target   mgl32.Vec3 // Point the camera looks at
	Up       mgl32.Vec3 // Up direction vector

	Fov         float32 // Field of view, degrees
	Near        float32 // Near clipping plane
	Far         float32 // Far clipping plane
	AspectRatio float32 // Screen aspect ratio

	ViewA mgl32.Vec3 // Starting viewpoint
	ViewB mgl32.Vec3 // Alternate viewpoint

	alternate bool
}

func New(fov, near, far, aspect float32, viewA, viewB, target mgl32.Vec3) *Camera {
	return &Camera{
		Position:    viewA,
		Target:      target,
		Up:          mgl32.Vec3{0, 1, 0},
		Fov:         fov,
		Near:        near,
		Far:         far,
		AspectRatio: aspect,
		ViewA:       viewA,
		ViewB:       viewB,
	}
}

func (c *Camera) SetAspectRatio(aspect float32) {
	if aspect > 0 {
		c.AspectRatio = aspect
	}
}

// Toggle flips to the other viewpoint and returns the new position.
// The first call moves to ViewB.
func (c *Camera) Toggle() mgl32.Vec3 {
	c.alternate = !c.alternate
	if c.alternate {
		c.Position = c.ViewB
	} else {
		c.Position = c.ViewA
	}
	return c.Position
}

// Alternate reports whether the camera sits at ViewB.
func (c *Camera) Alternate() bool {
	return c.alternate
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// WorldMatrix places the camera in the scene; it is the inverse of the view.
func (c *Camera) WorldMatrix() mgl32.Mat4 {
	return c.GetViewMatrix().Inv()
}
