package actor

import (
	"math"
	"testing"
	"time"

	"GopherFishing/internal/behaviour"
	"GopherFishing/internal/clock"
	"GopherFishing/internal/config"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNode struct {
	name     string
	position mgl32.Vec3
	rotation mgl32.Vec3
	scale    mgl32.Vec3
	visible  bool
}

func (n *fakeNode) SetPosition(v mgl32.Vec3) { n.position = v }
func (n *fakeNode) SetRotation(v mgl32.Vec3) { n.rotation = v }
func (n *fakeNode) SetScale(v mgl32.Vec3)    { n.scale = v }
func (n *fakeNode) SetVisible(v bool)        { n.visible = v }

// deferredLoader holds load requests until Complete is called.
type deferredLoader struct {
	pending map[string]func(behaviour.Node)
	nodes   map[string]*fakeNode
}

func newDeferredLoader() *deferredLoader {
	return &deferredLoader{
		pending: map[string]func(behaviour.Node){},
		nodes:   map[string]*fakeNode{},
	}
}

func (l *deferredLoader) Load(asset string, parent behaviour.Node, done func(behaviour.Node)) {
	l.pending[asset] = done
}

func (l *deferredLoader) NewGroup(name string, parent behaviour.Node) behaviour.Node {
	return &fakeNode{name: name}
}

func (l *deferredLoader) Complete(asset string) *fakeNode {
	n := &fakeNode{name: asset}
	l.nodes[asset] = n
	l.pending[asset](n)
	delete(l.pending, asset)
	return n
}

func TestBoatPoseAppliedOnLoad(t *testing.T) {
	loader := newDeferredLoader()
	boat := NewBoat(loader, config.Default().Boat)

	assert.False(t, boat.Loaded())
	node := loader.Complete("boat")

	assert.True(t, boat.Loaded())
	assert.Equal(t, mgl32.Vec3{3, 3, 3}, node.scale)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, node.position)
	assert.InDelta(t, math.Pi, node.rotation.Y(), 1e-6)
	assert.True(t, node.visible)
}

func TestBystanderPose(t *testing.T) {
	loader := newDeferredLoader()
	b := NewBystander(loader, config.Default().Bystander)
	node := loader.Complete("bunny")

	assert.True(t, b.Loaded())
	assert.Equal(t, mgl32.Vec3{0, 4, -2}, node.position)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, node.scale)
}

func TestActorWithoutLoaderStaysAbsent(t *testing.T) {
	boat := NewBoat(nil, config.Default().Boat)
	assert.False(t, boat.Loaded())
}

func TestFishStartsHidden(t *testing.T) {
	loader := newDeferredLoader()
	fish := NewFish(loader, config.Default().Fish, clock.NewTimeline())
	node := loader.Complete("fish")

	assert.False(t, node.visible)
	assert.False(t, fish.Visible())
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, node.scale)
	assert.Equal(t, mgl32.Vec3{0, 6, -5}, node.position)
}

func TestFishOperationsBeforeLoadAreNoOps(t *testing.T) {
	loader := newDeferredLoader()
	fish := NewFish(loader, config.Default().Fish, clock.NewTimeline())

	fish.Reveal()
	fish.Update()
	fish.Hide()

	assert.False(t, fish.Visible())
	assert.False(t, fish.Caught())
	assert.False(t, fish.Revealing())
}

func TestFishRevealGrowsTowardsCamera(t *testing.T) {
	tl := clock.NewTimeline()
	loader := newDeferredLoader()
	cfg := config.Default().Fish
	fish := NewFish(loader, cfg, tl)
	loader.Complete("fish")

	fish.Reveal()
	require.True(t, fish.Visible())
	assert.True(t, fish.Caught())
	assert.Equal(t, float32(0), fish.Object.Transform.Scale.X())
	assert.Equal(t, cfg.StartDepth, fish.Object.Transform.Position.Z())

	tl.Advance(250 * time.Millisecond)
	fish.Update()
	assert.InDelta(t, 1.5, fish.Object.Transform.Scale.X(), 1e-5)
	assert.InDelta(t, cfg.StartDepth+1.5, fish.Object.Transform.Position.Z(), 1e-5)
	assert.True(t, fish.Revealing())

	tl.Advance(time.Second)
	fish.Update()
	assert.Equal(t, cfg.TargetScale, fish.Object.Transform.Scale.X())
	assert.False(t, fish.Revealing())

	// stays at target once finished
	tl.Advance(time.Second)
	fish.Update()
	assert.Equal(t, cfg.TargetScale, fish.Object.Transform.Scale.X())
}

func TestFishRevealIsRestartable(t *testing.T) {
	tl := clock.NewTimeline()
	loader := newDeferredLoader()
	fish := NewFish(loader, config.Default().Fish, tl)
	loader.Complete("fish")

	fish.Reveal()
	tl.Advance(400 * time.Millisecond)
	fish.Update()

	fish.Reveal()
	assert.Equal(t, float32(0), fish.Object.Transform.Scale.X())
	assert.True(t, fish.Revealing())
}

func TestFishHideStopsReveal(t *testing.T) {
	tl := clock.NewTimeline()
	loader := newDeferredLoader()
	fish := NewFish(loader, config.Default().Fish, tl)
	node := loader.Complete("fish")

	fish.Reveal()
	fish.Object.Sync()
	assert.True(t, node.visible)

	fish.Hide()
	fish.Object.Sync()
	assert.False(t, node.visible)
	assert.False(t, fish.Caught())
	assert.False(t, fish.Revealing())

	// a second hide is harmless
	fish.Hide()
	assert.False(t, fish.Visible())
}

func TestRodLoadsUnderPivot(t *testing.T) {
	loader := newDeferredLoader()
	pivot := loader.NewGroup("pivot", nil)
	loaded := false
	rod := NewRod(loader, config.Default().Rig.Pose, pivot, func() { loaded = true })

	assert.False(t, rod.Loaded())
	node := loader.Complete("fishing")
	assert.True(t, loaded)
	assert.True(t, rod.Loaded())
	assert.Equal(t, mgl32.Vec3{0.01, 0.01, 0.01}, node.scale)

	rod.SetPitch(0.1)
	rod.Object.Sync()
	assert.InDelta(t, 0.1, node.rotation.X(), 1e-6)
	assert.InDelta(t, math.Pi/8, node.rotation.Z(), 1e-6)
}
