// Package actor holds the scene's model-backed actors. Each actor asks the
// loader for its model and applies a fixed pose when it arrives; until then
// the actor is absent and every operation on it is a no-op.
package actor

import (
	"GopherFishing/internal/behaviour"
	"GopherFishing/internal/config"
	"GopherFishing/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// ModelLoader fetches model assets for the scene host.
type ModelLoader interface {
	// Load fetches asset in the background and calls done on the frame
	// thread once the model is in the scene under parent (nil for the
	// scene root). done is never called if loading fails.
	Load(asset string, parent behaviour.Node, done func(behaviour.Node))
	// NewGroup creates an empty node usable as a pivot.
	NewGroup(name string, parent behaviour.Node) behaviour.Node
}

// Tag marks the GameObjects of model-backed actors.
const Tag = "actor"

// Actor is a GameObject with a model and a resting pose.
type Actor struct {
	Object *behaviour.GameObject
	Pose   config.Pose
}

func newActor(name string, pose config.Pose) *Actor {
	a := &Actor{
		Object: behaviour.NewGameObject(name),
		Pose:   pose,
	}
	a.Object.Tag = Tag
	return a
}

// load requests the model and applies the pose on arrival. onLoad runs
// after the pose is in place.
func (a *Actor) load(loader ModelLoader, parent behaviour.Node, onLoad func()) {
	if loader == nil {
		return
	}
	loader.Load(a.Pose.Asset, parent, func(node behaviour.Node) {
		a.ApplyPose()
		if onLoad != nil {
			onLoad()
		}
		a.Object.SetNode(node)
		logger.Log.Debug("Actor loaded", zap.String("actor", a.Object.Name), zap.String("asset", a.Pose.Asset))
	})
}

// ApplyPose resets the transform to the configured pose.
func (a *Actor) ApplyPose() {
	t := a.Object.Transform
	t.SetUniformScale(a.Pose.Scale)
	t.SetPosition(mgl32.Vec3(a.Pose.Position))
	t.SetRotation(mgl32.Vec3(a.Pose.Rotation))
}

// Loaded reports whether the model has arrived.
func (a *Actor) Loaded() bool {
	return a.Object.Loaded()
}

// Boat is the player's boat.
type Boat struct {
	*Actor
}

func NewBoat(loader ModelLoader, pose config.Pose) *Boat {
	b := &Boat{Actor: newActor("Boat", pose)}
	b.load(loader, nil, nil)
	return b
}

// Bystander is the figure keeping the angler company.
type Bystander struct {
	*Actor
}

func NewBystander(loader ModelLoader, pose config.Pose) *Bystander {
	b := &Bystander{Actor: newActor("Bystander", pose)}
	b.load(loader, nil, nil)
	return b
}

// Rod is the fishing rod model, parented to the rig's pivot group.
type Rod struct {
	*Actor
}

// NewRod requests the rod model under pivot; onLoad runs once it arrives.
func NewRod(loader ModelLoader, pose config.Pose, pivot behaviour.Node, onLoad func()) *Rod {
	r := &Rod{Actor: newActor("Rod", pose)}
	r.load(loader, pivot, onLoad)
	return r
}

// SetPitch tilts the rod about its X axis relative to its resting pose.
func (r *Rod) SetPitch(angle float32) {
	rot := mgl32.Vec3(r.Pose.Rotation)
	rot[0] += angle
	r.Object.Transform.SetRotation(rot)
}
