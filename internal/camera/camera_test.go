package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	viewA  = mgl32.Vec3{0, 5, -3}
	viewB  = mgl32.Vec3{0, 9, 22}
	target = mgl32.Vec3{0, 5, -12}
)

func TestNewCameraStartsAtViewA(t *testing.T) {
	cam := New(50, 1, 20000, 16.0/9.0, viewA, viewB, target)

	if cam.Position != viewA {
		t.Errorf("Expected position %v, got %v", viewA, cam.Position)
	}
	if cam.Alternate() {
		t.Error("Camera should start at the first viewpoint")
	}
}

func TestCameraToggleAlternates(t *testing.T) {
	cam := New(50, 1, 20000, 1, viewA, viewB, target)

	want := []mgl32.Vec3{viewB, viewA, viewB, viewA, viewB}
	for i, w := range want {
		got := cam.Toggle()
		if got != w {
			t.Errorf("Toggle %d: expected %v, got %v", i+1, w, got)
		}
		if cam.Position != w {
			t.Errorf("Toggle %d: position not updated", i+1)
		}
	}
}

func TestCameraViewMatrixLooksAtTarget(t *testing.T) {
	cam := New(50, 1, 20000, 1, viewA, viewB, target)

	// The target lies straight ahead on the view-space -Z axis
	p := cam.GetViewMatrix().Mul4x1(target.Vec4(1))
	if mgl32.Abs(p.X()) > 1e-4 || mgl32.Abs(p.Y()) > 1e-4 {
		t.Errorf("Target should be centered in view space, got %v", p)
	}
	if p.Z() >= 0 {
		t.Errorf("Target should be in front of the camera, got z=%v", p.Z())
	}
}

func TestCameraWorldMatrixSitsAtPosition(t *testing.T) {
	cam := New(50, 1, 20000, 1, viewA, viewB, target)
	cam.Toggle()

	origin := cam.WorldMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	for i := range origin {
		if mgl32.Abs(origin[i]-viewB[i]) > 1e-3 {
			t.Fatalf("Expected camera origin %v, got %v", viewB, origin)
		}
	}

	// Local -Z points at the target
	fwd := cam.WorldMatrix().Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
	want := target.Sub(viewB).Normalize()
	if fwd.Dot(want) < 0.999 {
		t.Errorf("Expected forward %v, got %v", want, fwd)
	}
}

func TestCameraSetAspectRatio(t *testing.T) {
	cam := New(50, 1, 20000, 1, viewA, viewB, target)

	cam.SetAspectRatio(2)
	if cam.AspectRatio != 2 {
		t.Errorf("Expected aspect 2, got %v", cam.AspectRatio)
	}

	cam.SetAspectRatio(0)
	if cam.AspectRatio != 2 {
		t.Error("A zero aspect ratio should be ignored")
	}
}
