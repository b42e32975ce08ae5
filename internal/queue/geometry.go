package queue

import (
	"GopherQueue/internal/bounding"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// UnsetDistance marks a geometry whose queue distance has not been computed
// for the current frame.
var UnsetDistance = math32.Inf(-1)

// Geometry is the renderable handle the queue sorts. The queue never owns a
// geometry; it only writes the queue distance, which implementations must
// store as a plain per-frame cache and report as UnsetDistance until set.
type Geometry interface {
	// WorldBound returns the world bounding volume or a nil interface
	WorldBound() bounding.Volume
	WorldTranslation() mgl32.Vec3
	// SortKey groups geometries that share render state
	SortKey() int
	QueueDistance() float32
	SetQueueDistance(d float32)
}

// absent reports whether g is a missing handle. A nil pointer stored in the
// interface counts as missing when its type implements IsNil.
func absent(g Geometry) bool {
	if g == nil {
		return true
	}
	n, ok := g.(interface{ IsNil() bool })
	return ok && n.IsNil()
}

// Camera is the view the comparators measure distances from
type Camera interface {
	Location() mgl32.Vec3
	// Direction is the normalized view direction
	Direction() mgl32.Vec3
}

// RenderManager draws geometries handed to it by the queue
type RenderManager interface {
	RenderGeometry(g Geometry)
}
