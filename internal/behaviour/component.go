package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Component is the unit of per-frame behaviour attached to a GameObject.
type Component interface {
	Awake()     // Called when the component is attached
	Start()     // Called before the first Update
	Update()    // Called every frame
	OnDestroy() // Called when the component or its object goes away

	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// BaseComponent provides no-op lifecycle methods. Embed it and override
// what you need.
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
}

func (c *BaseComponent) Awake()     {}
func (c *BaseComponent) Start()     {}
func (c *BaseComponent) Update()    {}
func (c *BaseComponent) OnDestroy() {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}

// Node is the engine-side handle a GameObject drives. The scene host
// implements it; nothing in this package knows which engine is behind it.
type Node interface {
	SetPosition(mgl32.Vec3)
	SetRotation(mgl32.Vec3) // Euler XYZ, radians
	SetScale(mgl32.Vec3)
	SetVisible(bool)
}

// GameObject is a named scene entity. Its Node stays nil until the backing
// model finishes loading.
type GameObject struct {
	Name       string
	Tag        string
	Active     bool
	Transform  *Transform
	Components []Component
	node       Node
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
		Transform:  NewTransform(),
	}
}

func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	component.SetEnabled(true)
	obj.Components = append(obj.Components, component)
	component.Awake()
}

// SetNode binds the engine handle and pushes the current transform to it.
func (obj *GameObject) SetNode(node Node) {
	obj.node = node
	obj.Transform.dirty = true
	obj.Sync()
}

func (obj *GameObject) GetNode() Node {
	return obj.node
}

// Loaded reports whether the engine handle is bound.
func (obj *GameObject) Loaded() bool {
	return obj.node != nil
}

// Sync pushes a dirty transform to the bound node.
func (obj *GameObject) Sync() {
	if obj.node == nil || !obj.Transform.dirty {
		return
	}
	t := obj.Transform
	obj.node.SetPosition(t.Position)
	obj.node.SetRotation(t.Rotation)
	obj.node.SetScale(t.Scale)
	obj.node.SetVisible(t.Visible)
	t.dirty = false
}

func (obj *GameObject) internalUpdate() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Update()
		}
	}
}

func (obj *GameObject) internalStart() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Start()
		}
	}
}

func (obj *GameObject) Destroy() {
	for _, comp := range obj.Components {
		comp.OnDestroy()
	}
	obj.Active = false
}
