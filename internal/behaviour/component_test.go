package behaviour

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("Boat")

	if obj == nil {
		t.Fatal("NewGameObject returned nil")
	}

	if obj.Name != "Boat" {
		t.Errorf("Expected name 'Boat', got '%s'", obj.Name)
	}

	if !obj.Active {
		t.Error("New GameObject should be active by default")
	}

	if obj.Loaded() {
		t.Error("New GameObject should not have a node yet")
	}

	if obj.Transform.Position != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Expected position (0,0,0), got %v", obj.Transform.Position)
	}

	if obj.Transform.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected scale (1,1,1), got %v", obj.Transform.Scale)
	}
}

func TestTransformSettersMarkDirty(t *testing.T) {
	transform := NewTransform()
	obj := NewGameObject("Rod")
	obj.Transform = transform
	obj.SetNode(&mockNode{})

	transform.SetRotation(mgl32.Vec3{0, math.Pi / 2, 0})

	if !transform.Dirty() {
		t.Error("SetRotation should mark the transform dirty")
	}
}

func TestTransformUniformScale(t *testing.T) {
	transform := NewTransform()

	transform.SetUniformScale(3)

	if transform.Scale != (mgl32.Vec3{3, 3, 3}) {
		t.Errorf("Expected scale (3,3,3), got %v", transform.Scale)
	}
}

type MockComponent struct {
	BaseComponent
	startCalled   bool
	updateCalled  bool
	destroyCalled bool
}

func (m *MockComponent) Start() {
	m.startCalled = true
}

func (m *MockComponent) Update() {
	m.updateCalled = true
}

func (m *MockComponent) OnDestroy() {
	m.destroyCalled = true
}

type mockNode struct {
	position mgl32.Vec3
	rotation mgl32.Vec3
	scale    mgl32.Vec3
	visible  bool
	pushes   int
}

func (n *mockNode) SetPosition(v mgl32.Vec3) { n.position = v; n.pushes++ }
func (n *mockNode) SetRotation(v mgl32.Vec3) { n.rotation = v }
func (n *mockNode) SetScale(v mgl32.Vec3)    { n.scale = v }
func (n *mockNode) SetVisible(v bool)        { n.visible = v }

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)

	if len(obj.Components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.Components))
	}

	if comp.GetGameObject() != obj {
		t.Error("Component's GameObject reference not set correctly")
	}

	if !comp.GetEnabled() {
		t.Error("Added component should be enabled")
	}
}

func TestGameObjectSetNodePushesTransform(t *testing.T) {
	obj := NewGameObject("Fish")
	obj.Transform.SetPosition(mgl32.Vec3{0, 6, -5})
	obj.Transform.SetVisible(false)

	node := &mockNode{}
	obj.SetNode(node)

	if node.position != (mgl32.Vec3{0, 6, -5}) {
		t.Errorf("Expected node position (0,6,-5), got %v", node.position)
	}
	if node.visible {
		t.Error("Node should be hidden")
	}
	if obj.Transform.Dirty() {
		t.Error("Transform should be clean after sync")
	}

	obj.Sync()
	if node.pushes != 1 {
		t.Errorf("Clean transform should not be pushed again, got %d pushes", node.pushes)
	}
}
