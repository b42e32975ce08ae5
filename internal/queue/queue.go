// Package queue buckets renderable geometries for a frame and drains each
// bucket in the order its comparator defines.
//
// A RenderQueue is owned by a single render pass: it is filled while the
// scene is flattened and emptied while the frame is drawn, all on one
// goroutine. Callers populating it from several goroutines must serialize.
package queue

import (
	"errors"
	"fmt"

	"GopherQueue/internal/logger"

	"go.uber.org/zap"
)

var (
	ErrUnsupportedBucket     = errors.New("unsupported bucket")
	ErrUnsupportedShadowMode = errors.New("unsupported shadow mode")
	ErrUnknownComparator     = errors.New("unknown geometry comparator")
	ErrNilRenderManager      = errors.New("nil render manager")
)

const numBuckets = int(Inherit)

type RenderQueue struct {
	lists      [numBuckets]*GeometryList
	shadowCast *GeometryList
	shadowRecv *GeometryList
	listSize   int
	log        *zap.Logger
}

type Option func(*RenderQueue)

// WithLogger sets the logger, the global logger is used otherwise
func WithLogger(l *zap.Logger) Option {
	return func(q *RenderQueue) {
		q.log = l
	}
}

// WithListSize sets the initial capacity of every list
func WithListSize(n int) Option {
	return func(q *RenderQueue) {
		if n > 0 {
			q.listSize = n
		}
	}
}

func NewRenderQueue(opts ...Option) *RenderQueue {
	q := &RenderQueue{listSize: DefaultSize}
	for _, opt := range opts {
		opt(q)
	}
	q.log = logger.Or(q.log)

	for i := range q.lists {
		q.lists[i] = NewGeometryListSize(DefaultComparator(Bucket(i)), q.listSize)
	}
	q.shadowCast = NewGeometryListSize(NewOpaqueComparator(), q.listSize)
	q.shadowRecv = NewGeometryListSize(NewOpaqueComparator(), q.listSize)
	return q
}

// List returns the list backing bucket b
func (q *RenderQueue) List(b Bucket) (*GeometryList, error) {
	if b < 0 || int(b) >= numBuckets {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedBucket, b)
	}
	return q.lists[b], nil
}

// ShadowQueueContent returns the cast or receive shadow list
func (q *RenderQueue) ShadowQueueContent(mode ShadowMode) (*GeometryList, error) {
	switch mode {
	case ShadowCast:
		return q.shadowCast, nil
	case ShadowReceive:
		return q.shadowRecv, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedShadowMode, mode)
}

// SetGeometryComparator swaps the comparator of bucket b. The bucket gets a
// fresh list, so anything already queued in it is dropped; call it before the
// queue is populated for the frame.
func (q *RenderQueue) SetGeometryComparator(b Bucket, cmp GeometryComparator) error {
	old, err := q.List(b)
	if err != nil {
		return err
	}
	if old.Size() > 0 {
		q.log.Warn("Comparator replaced on populated bucket, queued geometries dropped",
			zap.Stringer("bucket", b),
			zap.Int("dropped", old.Size()))
	}
	q.lists[b] = NewGeometryListSize(cmp, q.listSize)
	return nil
}

// GeometryComparator returns the comparator used by bucket b
func (q *RenderQueue) GeometryComparator(b Bucket) (GeometryComparator, error) {
	list, err := q.List(b)
	if err != nil {
		return nil, err
	}
	return list.Comparator(), nil
}

// AddToQueue queues g in bucket b. Inherit must be resolved by the caller.
func (q *RenderQueue) AddToQueue(g Geometry, b Bucket) error {
	list, err := q.List(b)
	if err != nil {
		return err
	}
	list.Add(g)
	return nil
}

// AddToShadowQueue queues g in the shadow lists selected by mode. Off and
// Inherit queue nothing.
func (q *RenderQueue) AddToShadowQueue(g Geometry, mode ShadowMode) error {
	switch mode {
	case ShadowOff, ShadowInherit:
	case ShadowCast:
		q.shadowCast.Add(g)
	case ShadowReceive:
		q.shadowRecv.Add(g)
	case ShadowCastAndReceive:
		q.shadowCast.Add(g)
		q.shadowRecv.Add(g)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedShadowMode, mode)
	}
	return nil
}

func (q *RenderQueue) IsQueueEmpty(b Bucket) (bool, error) {
	list, err := q.List(b)
	if err != nil {
		return false, err
	}
	return list.Size() == 0, nil
}

// Render sorts bucket b for cam and hands every geometry to rm in order.
// With clear the bucket is emptied afterwards, otherwise the sorted content
// stays queued and can be rendered again.
func (q *RenderQueue) Render(b Bucket, rm RenderManager, cam Camera, clear bool) error {
	list, err := q.List(b)
	if err != nil {
		return err
	}
	if rm == nil {
		return ErrNilRenderManager
	}
	q.log.Debug("Rendering bucket", zap.Stringer("bucket", b), zap.Int("count", list.Size()))
	renderGeometryList(list, rm, cam, clear)
	return nil
}

// RenderShadow renders the cast or receive shadow list
func (q *RenderQueue) RenderShadow(mode ShadowMode, rm RenderManager, cam Camera, clear bool) error {
	list, err := q.ShadowQueueContent(mode)
	if err != nil {
		return err
	}
	if rm == nil {
		return ErrNilRenderManager
	}
	q.log.Debug("Rendering shadow queue", zap.Stringer("mode", mode), zap.Int("count", list.Size()))
	renderGeometryList(list, rm, cam, clear)
	return nil
}

func renderGeometryList(list *GeometryList, rm RenderManager, cam Camera, clear bool) {
	list.SetCamera(cam)
	list.Sort()
	for i := 0; i < list.Size(); i++ {
		g := list.Get(i)
		if absent(g) {
			continue
		}
		rm.RenderGeometry(g)
		g.SetQueueDistance(UnsetDistance)
	}
	if clear {
		list.Clear()
	}
}

// Clear empties every bucket and both shadow lists
func (q *RenderQueue) Clear() {
	for _, list := range q.lists {
		list.Clear()
	}
	q.shadowCast.Clear()
	q.shadowRecv.Clear()
}
