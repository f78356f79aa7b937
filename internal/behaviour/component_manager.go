package behaviour

// ComponentManager owns the GameObjects of one scene and drives their
// components once per frame, in registration order.
type ComponentManager struct {
	objects []*GameObject
}

func NewComponentManager() *ComponentManager {
	return &ComponentManager{}
}

// Register appends the objects and starts their enabled components.
func (cm *ComponentManager) Register(objs ...*GameObject) {
	for _, obj := range objs {
		cm.objects = append(cm.objects, obj)
		obj.internalStart()
	}
}

// Tagged returns the registered objects carrying tag.
func (cm *ComponentManager) Tagged(tag string) []*GameObject {
	var out []*GameObject
	for _, obj := range cm.objects {
		if obj.Tag == tag {
			out = append(out, obj)
		}
	}
	return out
}

// UpdateAll runs every component, then pushes changed transforms to the
// nodes. Sync runs after all updates so a component may move another
// object in the same frame.
func (cm *ComponentManager) UpdateAll() {
	for _, obj := range cm.objects {
		obj.internalUpdate()
	}
	for _, obj := range cm.objects {
		obj.Sync()
	}
}

func (cm *ComponentManager) Len() int {
	return len(cm.objects)
}

// Clear destroys every object and empties the manager.
func (cm *ComponentManager) Clear() {
	for _, obj := range cm.objects {
		obj.Destroy()
	}
	cm.objects = nil
}
