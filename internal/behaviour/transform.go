package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a local position / Euler rotation / scale triple. Setters
// mark it dirty so the owning GameObject re-syncs its node.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler XYZ, radians
	Scale    mgl32.Vec3
	Visible  bool
	dirty    bool
}

func NewTransform() *Transform {
	return &Transform{
		Scale:   mgl32.Vec3{1, 1, 1},
		Visible: true,
		dirty:   true,
	}
}

func (t *Transform) SetPosition(pos mgl32.Vec3) {
	t.Position = pos
	t.dirty = true
}

func (t *Transform) SetRotation(rot mgl32.Vec3) {
	t.Rotation = rot
	t.dirty = true
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.Scale = scale
	t.dirty = true
}

// SetUniformScale sets the same scale on all three axes.
func (t *Transform) SetUniformScale(s float32) {
	t.SetScale(mgl32.Vec3{s, s, s})
}

func (t *Transform) SetVisible(visible bool) {
	t.Visible = visible
	t.dirty = true
}

func (t *Transform) Dirty() bool {
	return t.dirty
}
