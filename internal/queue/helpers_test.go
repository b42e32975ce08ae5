package queue

import (
	"GopherQueue/internal/bounding"

	"github.com/go-gl/mathgl/mgl32"
)

type testGeometry struct {
	name     string
	key      int
	pos      mgl32.Vec3
	bound    bounding.Volume
	dist     float32
	distSet  bool
	computed int
}

func newGeom(name string, key int, pos mgl32.Vec3) *testGeometry {
	return &testGeometry{name: name, key: key, pos: pos}
}

func (g *testGeometry) IsNil() bool                  { return g == nil }
func (g *testGeometry) WorldBound() bounding.Volume  { return g.bound }
func (g *testGeometry) WorldTranslation() mgl32.Vec3 { return g.pos }
func (g *testGeometry) SortKey() int                 { return g.key }

func (g *testGeometry) QueueDistance() float32 {
	if !g.distSet {
		return UnsetDistance
	}
	return g.dist
}

func (g *testGeometry) SetQueueDistance(d float32) {
	if d == UnsetDistance {
		g.distSet = false
		return
	}
	g.computed++
	g.dist = d
	g.distSet = true
}

type testCamera struct {
	loc, dir mgl32.Vec3
}

func (c testCamera) Location() mgl32.Vec3  { return c.loc }
func (c testCamera) Direction() mgl32.Vec3 { return c.dir }

// forward looks down +Z from the origin
var forward = testCamera{dir: mgl32.Vec3{0, 0, 1}}

type recorder struct {
	drawn []Geometry
}

func (r *recorder) RenderGeometry(g Geometry) {
	r.drawn = append(r.drawn, g)
}

func (r *recorder) names() []string {
	out := make([]string, len(r.drawn))
	for i, g := range r.drawn {
		out[i] = g.(*testGeometry).name
	}
	return out
}

// keyComparator orders by sort key only, so equal keys are ties
type keyComparator struct{}

func (keyComparator) SetCamera(Camera) {}

func (keyComparator) Compare(a, b Geometry) int {
	return compareInt(a.SortKey(), b.SortKey())
}

func listNames(l *GeometryList) []string {
	out := make([]string, l.Size())
	for i := range out {
		out[i] = l.Get(i).(*testGeometry).name
	}
	return out
}
