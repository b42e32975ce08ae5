package scene

import (
	"fmt"

	"GopherQueue/internal/logger"
	"GopherQueue/internal/queue"
	"GopherQueue/internal/renderer"

	"go.uber.org/zap"
)

// FlattenStats reports what one Flatten call queued
type FlattenStats struct {
	Queued   int
	Culled   int
	Shadowed int
}

// Flattener walks a scene and fills a render queue with resolved buckets
type Flattener struct {
	// FrustumCulling skips geometries whose bound is outside the camera
	// frustum. Gui geometries are never culled.
	FrustumCulling bool

	log *zap.Logger
}

func NewFlattener(frustumCulling bool, log *zap.Logger) *Flattener {
	return &Flattener{FrustumCulling: frustumCulling, log: logger.Or(log)}
}

// Flatten queues every active geometry under root for cam
func (f *Flattener) Flatten(root *Node, cam *renderer.Camera, q *queue.RenderQueue) (FlattenStats, error) {
	var stats FlattenStats
	if root == nil {
		return stats, nil
	}

	var frustum renderer.Frustum
	if f.FrustumCulling && cam != nil {
		frustum = cam.Frustum()
	}

	if err := f.flattenNode(root, cam != nil, &frustum, q, &stats); err != nil {
		return stats, err
	}
	f.log.Debug("Scene flattened",
		zap.String("root", root.Name),
		zap.Int("queued", stats.Queued),
		zap.Int("culled", stats.Culled),
		zap.Int("shadowed", stats.Shadowed))
	return stats, nil
}

func (f *Flattener) flattenNode(n *Node, haveCam bool, frustum *renderer.Frustum, q *queue.RenderQueue, stats *FlattenStats) error {
	if !n.Active {
		return nil
	}

	nodeBucket := n.ResolveBucket()
	nodeShadow := n.ResolveShadowMode()
	for _, g := range n.geometries {
		bucket := g.QueueBucket
		if bucket == queue.Inherit {
			bucket = nodeBucket
		}
		shadow := g.ShadowMode
		if shadow == queue.ShadowInherit {
			shadow = nodeShadow
		}

		if f.FrustumCulling && haveCam && bucket != queue.Gui {
			if bound := g.WorldBound(); bound != nil && !frustum.Intersects(bound) {
				stats.Culled++
				continue
			}
		}

		if err := q.AddToQueue(g, bucket); err != nil {
			return fmt.Errorf("queueing %s: %w", g.Name, err)
		}
		stats.Queued++
		if shadow != queue.ShadowOff {
			if err := q.AddToShadowQueue(g, shadow); err != nil {
				return fmt.Errorf("queueing shadow of %s: %w", g.Name, err)
			}
			stats.Shadowed++
		}
	}

	for _, child := range n.children {
		if err := f.flattenNode(child, haveCam, frustum, q, stats); err != nil {
			return err
		}
	}
	return nil
}
