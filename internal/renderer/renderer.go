// Package renderer holds the engine side collaborators of the render queue:
// the camera, materials, geometries and the render manager that turns a
// sorted queue into backend draw calls.
package renderer

import (
	"go.uber.org/zap"
)

// Backend receives the draw calls of a frame. Implementations wrap a GPU API;
// the render manager only calls UseShader and BindTexture when the state
// actually changes.
type Backend interface {
	UseShader(name string)
	BindTexture(id uint32)
	Draw(g *Geometry)
}

// LogBackend is a headless backend that logs every call at debug level
type LogBackend struct {
	Log *zap.Logger
}

func (b LogBackend) UseShader(name string) {
	b.Log.Debug("Use shader", zap.String("shader", name))
}

func (b LogBackend) BindTexture(id uint32) {
	b.Log.Debug("Bind texture", zap.Uint32("textureID", id))
}

func (b LogBackend) Draw(g *Geometry) {
	b.Log.Debug("Draw",
		zap.String("geometry", g.Name),
		zap.Stringer("bucket", g.QueueBucket),
		zap.Float32("z", g.Z()))
}
