package engine

import (
	"GopherFishing/internal/behaviour"

	"github.com/g3n/engine/core"
	"github.com/go-gl/mathgl/mgl32"
)

// sceneNode adapts a g3n node to behaviour.Node.
type sceneNode struct {
	node *core.Node
}

func (n *sceneNode) SetPosition(v mgl32.Vec3) {
	n.node.SetPosition(v.X(), v.Y(), v.Z())
}

func (n *sceneNode) SetRotation(v mgl32.Vec3) {
	n.node.SetRotation(v.X(), v.Y(), v.Z())
}

func (n *sceneNode) SetScale(v mgl32.Vec3) {
	n.node.SetScale(v.X(), v.Y(), v.Z())
}

func (n *sceneNode) SetVisible(visible bool) {
	n.node.SetVisible(visible)
}

// parentOf resolves a behaviour.Node to the g3n node to attach under,
// falling back to the scene root.
func (e *Engine) parentOf(parent behaviour.Node) *core.Node {
	if sn, ok := parent.(*sceneNode); ok && sn != nil {
		return sn.node
	}
	return e.scene
}
