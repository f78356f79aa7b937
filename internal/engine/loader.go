package engine

import (
	"fmt"
	"path/filepath"

	"GopherFishing/internal/behaviour"
	"GopherFishing/internal/logger"

	"github.com/g3n/engine/core"
	"github.com/g3n/engine/loader/gltf"
	"go.uber.org/zap"
)

// ModelPath returns the glTF file for a logical asset name.
func ModelPath(assetsDir, asset string) string {
	return filepath.Join(assetsDir, asset, "scene.gltf")
}

// Load parses the glTF document in the background, then builds the scene
// nodes on the frame thread, where GPU resources may be created. Failures
// are logged and done is never called.
func (e *Engine) Load(asset string, parent behaviour.Node, done func(behaviour.Node)) {
	path := ModelPath(e.cfg.AssetsDir, asset)
	attach := e.parentOf(parent)

	go func() {
		doc, err := gltf.ParseJSON(path)
		if err != nil {
			logger.Log.Warn("Failed to parse model", zap.String("asset", asset), zap.String("path", path), zap.Error(err))
			return
		}

		e.post(func() {
			node, err := buildScene(doc)
			if err != nil {
				logger.Log.Warn("Failed to build model", zap.String("asset", asset), zap.Error(err))
				return
			}
			attach.Add(node)
			logger.Log.Info("Model loaded", zap.String("asset", asset))
			done(&sceneNode{node: node.GetNode()})
		})
	}()
}

// NewGroup creates an empty node, used as a pivot.
func (e *Engine) NewGroup(name string, parent behaviour.Node) behaviour.Node {
	group := core.NewNode()
	group.SetName(name)
	e.parentOf(parent).Add(group)
	return &sceneNode{node: group}
}

func buildScene(doc *gltf.GLTF) (core.INode, error) {
	idx := 0
	if doc.Scene != nil {
		idx = *doc.Scene
	}
	if len(doc.Scenes) == 0 {
		return nil, fmt.Errorf("gltf document has no scenes")
	}
	return doc.LoadScene(idx)
}
