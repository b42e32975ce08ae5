package queue

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// GeometryComparator orders two geometries for a bucket. Compare returns -1
// when a draws before b, 1 when after and 0 when the order does not matter.
// The camera is set once per frame before the list is sorted.
type GeometryComparator interface {
	Compare(a, b Geometry) int
	SetCamera(cam Camera)
}

func compareFloat(a, b float32) int {
	if a == b {
		return 0
	} else if a < b {
		return -1
	}
	return 1
}

func sortKey(g Geometry) int {
	if absent(g) {
		return math.MinInt
	}
	return g.SortKey()
}

// OpaqueComparator groups geometries by sort key to minimise state changes
// and draws each group front to back for early depth rejection.
type OpaqueComparator struct {
	cam Camera
}

func NewOpaqueComparator() *OpaqueComparator {
	return &OpaqueComparator{}
}

func (c *OpaqueComparator) SetCamera(cam Camera) {
	c.cam = cam
}

// DistanceToCam projects the geometry's bound center (or world translation
// without a bound) onto the view axis. The signed projection is memoized in
// the geometry's queue distance until the queue resets it after rendering.
func (c *OpaqueComparator) DistanceToCam(g Geometry) float32 {
	if absent(g) {
		return UnsetDistance
	}
	if d := g.QueueDistance(); d != UnsetDistance {
		return d
	}
	if c.cam == nil {
		return 0
	}

	var pos mgl32.Vec3
	if bound := g.WorldBound(); bound != nil {
		pos = bound.Center()
	} else {
		pos = g.WorldTranslation()
	}
	d := pos.Sub(c.cam.Location()).Dot(c.cam.Direction())
	g.SetQueueDistance(d)
	return d
}

func (c *OpaqueComparator) Compare(a, b Geometry) int {
	if r := compareInt(sortKey(a), sortKey(b)); r != 0 {
		return r
	}
	return compareFloat(c.DistanceToCam(a), c.DistanceToCam(b))
}

func compareInt(a, b int) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// TransparentComparator draws far geometries first. Distances are measured to
// the closest edge of the world bound rather than its center so large
// volumes enclosing smaller ones still blend correctly.
type TransparentComparator struct {
	cam Camera
}

func NewTransparentComparator() *TransparentComparator {
	return &TransparentComparator{}
}

func (c *TransparentComparator) SetCamera(cam Camera) {
	c.cam = cam
}

func (c *TransparentComparator) DistanceToCam(g Geometry) float32 {
	if absent(g) {
		return UnsetDistance
	}
	if c.cam == nil {
		return 0
	}
	if bound := g.WorldBound(); bound != nil {
		return bound.DistanceToEdge(c.cam.Location())
	}
	return g.WorldTranslation().Sub(c.cam.Location()).Len()
}

func (c *TransparentComparator) Compare(a, b Geometry) int {
	return -compareFloat(c.DistanceToCam(a), c.DistanceToCam(b))
}

// GuiComparator orders by world Z, lowest first unless Descending is set.
// The camera is ignored.
type GuiComparator struct {
	Descending bool
}

func (c *GuiComparator) SetCamera(Camera) {}

func (c *GuiComparator) Compare(a, b Geometry) int {
	r := compareFloat(guiDepth(a), guiDepth(b))
	if c.Descending {
		return -r
	}
	return r
}

func guiDepth(g Geometry) float32 {
	if absent(g) {
		return UnsetDistance
	}
	return g.WorldTranslation().Z()
}

// NullComparator leaves geometries in insertion order
type NullComparator struct{}

func (NullComparator) SetCamera(Camera) {}

func (NullComparator) Compare(a, b Geometry) int {
	return 0
}

// Comparator names accepted by NewComparator
const (
	ComparatorOpaque      = "opaque"
	ComparatorTransparent = "transparent"
	ComparatorGui         = "gui"
	ComparatorNull        = "null"
)

// NewComparator builds a comparator by name, ignoring case
func NewComparator(name string) (GeometryComparator, error) {
	switch strings.ToLower(name) {
	case ComparatorOpaque:
		return NewOpaqueComparator(), nil
	case ComparatorTransparent:
		return NewTransparentComparator(), nil
	case ComparatorGui:
		return &GuiComparator{}, nil
	case ComparatorNull:
		return NullComparator{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownComparator, name)
}

// DefaultComparator returns the comparator a fresh queue uses for b
func DefaultComparator(b Bucket) GeometryComparator {
	switch b {
	case Opaque:
		return NewOpaqueComparator()
	case Transparent, Translucent:
		return NewTransparentComparator()
	case Gui:
		return &GuiComparator{}
	default:
		return NullComparator{}
	}
}
